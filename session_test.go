package gridkey_test

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/gridkey"
)

func TestGridkey(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gridkey Session Suite")
}

type flag string

func (f flag) String() string { return string(f) }

func flip(x, y int, cur flag) flag {
	if cur == flag("0") {
		return flag("1")
	}
	return flag("0")
}

// headless wires a session to a scripted byte stream instead of a
// terminal. Arrow keys arrive as their escape sequences.
func headless(input io.Reader) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(input),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	}
}

var _ = Describe("interactive session", func() {
	It("moves, selects, and completes", func() {
		// right (wraps 0 -> 1), space (flip cell), enter (confirm).
		ctl, err := gridkey.New(gridkey.Config[flag]{
			Width:          2,
			Height:         1,
			Initial:        flag("0"),
			Callback:       flip,
			ProgramOptions: headless(strings.NewReader("\x1b[C \r")),
		})
		Expect(err).NotTo(HaveOccurred())

		done, err := ctl.Start("place a piece")
		Expect(err).NotTo(HaveOccurred())

		Eventually(done).Should(BeClosed())
		Expect(ctl.Wait()).To(Succeed())

		Expect(ctl.Cells()).To(Equal([][]flag{{"0", "1"}}))
		x, y := ctl.Cursor()
		Expect(x).To(Equal(1))
		Expect(y).To(Equal(0))
	})

	It("rejects overlapping and repeated sessions", func() {
		pr, pw := io.Pipe()
		ctl, err := gridkey.New(gridkey.Config[flag]{
			Width:          1,
			Height:         1,
			Initial:        flag("0"),
			Callback:       flip,
			ProgramOptions: headless(pr),
		})
		Expect(err).NotTo(HaveOccurred())

		done, err := ctl.Start("first")
		Expect(err).NotTo(HaveOccurred())

		_, err = ctl.Start("second")
		Expect(err).To(MatchError(gridkey.ErrSessionActive))

		_, werr := pw.Write([]byte("\r"))
		Expect(werr).NotTo(HaveOccurred())
		Eventually(done).Should(BeClosed())

		_, err = ctl.Start("third")
		Expect(err).To(MatchError(gridkey.ErrSessionDone))
	})

	It("leaves untouched boards at the initial value", func() {
		ctl, err := gridkey.New(gridkey.Config[flag]{
			Width:          3,
			Height:         2,
			Initial:        flag("."),
			Callback:       flip,
			ProgramOptions: headless(strings.NewReader("\r")),
		})
		Expect(err).NotTo(HaveOccurred())

		done, err := ctl.Start("nothing to do")
		Expect(err).NotTo(HaveOccurred())
		Eventually(done).Should(BeClosed())

		for _, row := range ctl.Cells() {
			for _, cell := range row {
				Expect(cell).To(Equal(flag(".")))
			}
		}
	})
})
