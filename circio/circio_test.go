package circio_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/circio"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/grid"
)

var _ = Describe("Document", func() {
	var catalog *chip.Catalog

	BeforeEach(func() {
		catalog = chip.DefaultCatalog()
	})

	It("round-trips a grid through FromGrid and Build", func() {
		bounds := geom.Rect{X: 0, Y: 0, W: 4, H: 3}
		chips := []grid.Instance{
			{Cell: geom.Cell{X: 0, Y: 0}, Type: chip.Type{Name: "Const", Const: 5}},
			{Cell: geom.Cell{X: 2, Y: 0}, Type: chip.Type{Name: "Not"}, Orient: geom.MakeOrientation(2, true)},
		}
		fragments := map[grid.FragmentKey]grid.Shape{
			{Cell: geom.Cell{X: 1, Y: 0}, Dir: geom.West}: grid.Straight,
			{Cell: geom.Cell{X: 1, Y: 0}, Dir: geom.East}: grid.Straight,
		}

		g, err := grid.New("roundtrip", nil, catalog, bounds, chips, fragments)
		Expect(err).NotTo(HaveOccurred())

		doc, err := circio.FromGrid(g)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Puzzle).To(Equal("roundtrip"))
		Expect(doc.Size.Width).To(Equal(int32(4)))
		Expect(doc.Size.Height).To(Equal(int32(3)))
		Expect(doc.Chips).To(HaveLen(2))

		rebuilt, err := doc.Build(catalog, nil)
		Expect(err).NotTo(HaveOccurred())

		_, ok := rebuilt.ChipAt(geom.Cell{X: 2, Y: 0})
		Expect(ok).To(BeTrue())
		Expect(rebuilt.Fragments()).To(HaveLen(len(g.Fragments())))
	})

	It("rejects a chip key that isn't a valid delta", func() {
		doc := circio.Document{Puzzle: "bad"}
		doc.Size.Width, doc.Size.Height = 4, 4
		doc.Chips = map[string]circio.ChipDoc{
			"not-a-key": {Type: "Not"},
		}

		_, err := doc.Build(chip.DefaultCatalog(), nil)
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown wire shape name", func() {
		doc := circio.Document{Puzzle: "bad"}
		doc.Size.Width, doc.Size.Height = 4, 4
		doc.Wires = map[string]string{
			"pX0pY0E": "Loopy",
		}

		_, err := doc.Build(chip.DefaultCatalog(), nil)
		Expect(err).To(HaveOccurred())
	})

	It("fails Load with a descriptive error instead of panicking on a missing file", func() {
		_, err := circio.Load("/nonexistent/path/does-not-exist.yaml", chip.DefaultCatalog(), nil)
		Expect(err).To(HaveOccurred())
	})
})
