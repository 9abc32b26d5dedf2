package eval_test

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/tachygrid/chip"
	"github.com/sarchlab/tachygrid/eval"
	"github.com/sarchlab/tachygrid/geom"
	"github.com/sarchlab/tachygrid/interact"
	"github.com/sarchlab/tachygrid/puzzle"
	"github.com/sarchlab/tachygrid/wiresize"
)

func buildInstance(t chip.Type, slots []chip.Slot, cell geom.Cell) chip.Eval {
	cat := chip.DefaultCatalog()
	evals, err := cat.Build(t, slots, cell)
	Expect(err).NotTo(HaveOccurred())
	Expect(evals).To(HaveLen(1))
	return evals[0]
}

var _ = Describe("Evaluator", func() {
	var (
		mockCtrl *gomock.Controller
		harness  *MockPuzzleEval
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		harness = NewMockPuzzleEval(mockCtrl)
		harness.EXPECT().BeginTimeStep(gomock.Any()).AnyTimes()
		harness.EXPECT().BeginAdditionalCycle(gomock.Any()).AnyTimes()
		harness.EXPECT().EndCycle(gomock.Any()).Return(nil).AnyTimes()
		harness.EXPECT().NeedsAnotherCycle(gomock.Any()).Return(false).AnyTimes()
		harness.EXPECT().EndTimeStep(gomock.Any()).Return(nil).AnyTimes()
		harness.EXPECT().TaskIsCompleted(gomock.Any()).Return(false).AnyTimes()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("schedules a Const->Add chain and settles within one time step", func() {
		five := buildInstance(chip.Type{Name: "Const", Const: 5}, []chip.Slot{{Wire: 0}}, geom.Cell{})
		three := buildInstance(chip.Type{Name: "Const", Const: 3}, []chip.Slot{{Wire: 1}}, geom.Cell{})
		sum := buildInstance(chip.Type{Name: "Add"}, []chip.Slot{
			{Wire: 0, Size: wiresize.ThirtyTwo},
			{Wire: 1, Size: wiresize.ThirtyTwo},
			{Wire: 2, Size: wiresize.ThirtyTwo},
		}, geom.Cell{X: 1})

		prog := eval.Program{
			Instances: []eval.Instance{
				{Eval: five, Cell: geom.Cell{}},
				{Eval: three, Cell: geom.Cell{}},
				{Eval: sum, Cell: geom.Cell{X: 1}},
			},
			Edges:     [][]int{{2}, {2}, nil},
			WireCount: 3,
		}

		queue := interact.New()
		e, err := eval.New(prog, harness, queue, nil)
		Expect(err).NotTo(HaveOccurred())

		status := e.StepTimeStep()
		Expect(status).To(Equal(eval.Running))
		Expect(e.TimeStep()).To(Equal(uint32(1)))
	})

	It("detects a dependency loop", func() {
		a := buildInstance(chip.Type{Name: "Not"}, []chip.Slot{{Wire: 0}, {Wire: 1}}, geom.Cell{})
		b := buildInstance(chip.Type{Name: "Not"}, []chip.Slot{{Wire: 1}, {Wire: 0}}, geom.Cell{X: 1})

		prog := eval.Program{
			Instances: []eval.Instance{
				{Eval: a, Cell: geom.Cell{}},
				{Eval: b, Cell: geom.Cell{X: 1}},
			},
			Edges:     [][]int{{1}, {0}},
			WireCount: 2,
		}

		_, err := eval.New(prog, harness, interact.New(), nil)
		Expect(err).To(HaveOccurred())
	})

	It("pauses at a breakpoint raised by a Break chip", func() {
		button := buildInstance(chip.Type{Name: "Button"}, []chip.Slot{{Wire: 0}}, geom.Cell{})
		brk := buildInstance(chip.Type{Name: "Break"}, []chip.Slot{{Wire: 0}, {Wire: 1}}, geom.Cell{X: 1})

		prog := eval.Program{
			Instances: []eval.Instance{
				{Eval: button, Cell: geom.Cell{}},
				{Eval: brk, Cell: geom.Cell{X: 1}},
			},
			Edges:     [][]int{{1}, nil},
			WireCount: 2,
		}

		queue := interact.New()
		queue.PressButton(interact.Cell{}, 0, 1)

		e, err := eval.New(prog, harness, queue, nil)
		Expect(err).NotTo(HaveOccurred())

		status := e.StepTimeStep()
		Expect(status).To(Equal(eval.PausedAtBreakpoint))
		Expect(e.PausedAt()).To(Equal(geom.Cell{X: 1}))
	})

	It("reports fatal puzzle errors as Failed", func() {
		harness2 := NewMockPuzzleEval(mockCtrl)
		harness2.EXPECT().BeginTimeStep(gomock.Any()).AnyTimes()
		harness2.EXPECT().BeginAdditionalCycle(gomock.Any()).AnyTimes()
		harness2.EXPECT().EndCycle(gomock.Any()).Return([]puzzle.Error{{Message: "boom", Fatal: true}}).AnyTimes()
		harness2.EXPECT().NeedsAnotherCycle(gomock.Any()).Return(false).AnyTimes()
		harness2.EXPECT().EndTimeStep(gomock.Any()).Return(nil).AnyTimes()
		harness2.EXPECT().TaskIsCompleted(gomock.Any()).Return(false).AnyTimes()

		five := buildInstance(chip.Type{Name: "Const", Const: 5}, []chip.Slot{{Wire: 0}}, geom.Cell{})
		prog := eval.Program{
			Instances: []eval.Instance{{Eval: five, Cell: geom.Cell{}}},
			Edges:     [][]int{nil},
			WireCount: 1,
		}

		e, err := eval.New(prog, harness2, interact.New(), nil)
		Expect(err).NotTo(HaveOccurred())

		status := e.StepTimeStep()
		Expect(status).To(Equal(eval.Failed))
		Expect(e.Errors()).To(HaveLen(1))
	})
})
