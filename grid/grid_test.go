package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/grid"
)

var smallBounds = geom.Rect{X: 0, Y: 0, W: 4, H: 3}

var _ = Describe("Grid", func() {
	var catalog *chip.Catalog

	BeforeEach(func() {
		catalog = chip.DefaultCatalog()
	})

	It("accepts a Const wired straight into a Not", func() {
		chips := []grid.Instance{
			{Cell: geom.Cell{X: 0, Y: 0}, Type: chip.Type{Name: "Const", Const: 5}},
			{Cell: geom.Cell{X: 2, Y: 0}, Type: chip.Type{Name: "Not"}},
		}
		fragments := map[grid.FragmentKey]grid.Shape{
			{Cell: geom.Cell{X: 1, Y: 0}, Dir: geom.West}: grid.Straight,
			{Cell: geom.Cell{X: 1, Y: 0}, Dir: geom.East}: grid.Straight,
		}

		g, err := grid.New("test", nil, catalog, smallBounds, chips, fragments)
		Expect(err).NotTo(HaveOccurred())

		prog, _, err := g.Program()
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Instances).To(HaveLen(2))
		Expect(prog.Edges[0]).To(ConsistOf(1))
	})

	It("repairs a fragment with no opposite by inserting a reconciling stub", func() {
		fragments := map[grid.FragmentKey]grid.Shape{
			{Cell: geom.Cell{X: 1, Y: 1}, Dir: geom.East}: grid.Stub,
		}
		g, err := grid.New("test", nil, catalog, smallBounds, nil, fragments)
		Expect(err).NotTo(HaveOccurred())

		repaired := g.Fragments()
		Expect(repaired).To(HaveKey(grid.FragmentKey{Cell: geom.Cell{X: 2, Y: 1}, Dir: geom.West}))
		Expect(repaired[grid.FragmentKey{Cell: geom.Cell{X: 2, Y: 1}, Dir: geom.West}]).To(Equal(grid.Stub))
	})

	It("drops a fragment placed outside the bounds", func() {
		fragments := map[grid.FragmentKey]grid.Shape{
			{Cell: geom.Cell{X: 99, Y: 99}, Dir: geom.East}: grid.Stub,
		}
		g, err := grid.New("test", nil, catalog, smallBounds, nil, fragments)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Fragments()).To(BeEmpty())
	})

	Describe("TryMutate", func() {
		It("commits a valid batch and marks wires dirty", func() {
			g, err := grid.New("test", nil, catalog, smallBounds, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			before, _ := g.Wires()
			Expect(before).To(BeEmpty())

			ok := g.TryMutate([]grid.Change{
				grid.AddChip{Cell: geom.Cell{X: 0, Y: 0}, Type: chip.Type{Name: "Const", Const: 1}},
			})
			Expect(ok).To(BeTrue())

			_, stillThere := g.ChipAt(geom.Cell{X: 0, Y: 0})
			Expect(stillThere).To(BeTrue())

			after, errs := g.Wires()
			Expect(errs).To(BeEmpty())
			Expect(after).To(HaveLen(1))
		})

		It("rolls back a batch that would place a chip outside bounds", func() {
			g, err := grid.New("test", nil, catalog, smallBounds, nil, nil)
			Expect(err).NotTo(HaveOccurred())

			ok := g.TryMutate([]grid.Change{
				grid.AddChip{Cell: geom.Cell{X: 50, Y: 50}, Type: chip.Type{Name: "Const", Const: 1}},
			})
			Expect(ok).To(BeFalse())

			_, placed := g.ChipAt(geom.Cell{X: 50, Y: 50})
			Expect(placed).To(BeFalse())
		})

		It("rolls back a batch that references an unregistered chip type", func() {
			g, err := grid.New("test", nil, catalog, smallBounds, nil, nil)
			Expect(err).NotTo(HaveOccurred())

			ok := g.TryMutate([]grid.Change{
				grid.AddChip{Cell: geom.Cell{X: 0, Y: 0}, Type: chip.Type{Name: "NoSuchChip"}},
			})
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Builder", func() {
		It("builds the same grid as New", func() {
			g, err := grid.NewBuilder("test", catalog).
				WithBounds(smallBounds).
				WithChip(geom.Cell{X: 0, Y: 0}, chip.Type{Name: "Const", Const: 7}, geom.Identity).
				Build()
			Expect(err).NotTo(HaveOccurred())

			_, ok := g.ChipAt(geom.Cell{X: 0, Y: 0})
			Expect(ok).To(BeTrue())
		})
	})
})
