package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MuhammadAbdulBari/moon-phase/internal/exitcode"
	"github.com/MuhammadAbdulBari/moon-phase/internal/moon"
	"github.com/MuhammadAbdulBari/moon-phase/internal/output"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [DATE]",
	Short: "Explore moon phases interactively",
	Long: `Open an interactive moon phase calculator. Type a date and press enter,
or step through the days with the arrow keys.

Keys:
  enter        show the typed date
  ctrl+t       today
  ctrl+r       a random date
  up / down    previous / next day
  pgup / pgdn  back / forward 29 days
  esc, ctrl+c  quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// isInteractive reports whether the terminal is interactive (both stdin and
// stdout are TTYs). It's a variable so tests can override it.
var isInteractive = func() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		if stat.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}
	return true
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isInteractive() {
		return exitcode.Usage("tui requires an interactive terminal; use 'moon phase' in scripts")
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	start, err := resolveDate(arg)
	if err != nil {
		return err
	}

	rng := newRand(0)
	pick := func() (time.Time, error) { return randomDate(rng) }

	m := newWidgetModel(start, pick)
	p := tea.NewProgram(m, tea.WithOutput(cmd.ErrOrStderr()))
	finalModel, err := p.Run()
	if err != nil {
		return exitcode.General("running widget", err)
	}

	res := finalModel.(widgetModel).result
	output.Confirm(cmd.OutOrStdout(), fmt.Sprintf("%s on %s (%d%% illuminated)", res.Phase, moon.FormatLong(res.Date), res.Illumination))
	return nil
}

// --- Bubble Tea model ---

// monthStep is how far pgup and pgdown move the date.
const monthStep = 29

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginLeft(2)
)

// widgetModel is the interactive calculator: a date input, the selected
// date and the phase computed for it.
type widgetModel struct {
	input  textinput.Model
	date   time.Time
	result moon.Result
	status string
	failed bool
	random func() (time.Time, error)
}

func newWidgetModel(start time.Time, random func() (time.Time, error)) widgetModel {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	ti.Prompt = ""
	ti.Focus()

	m := widgetModel{input: ti, random: random}
	return m.selectDate(start)
}

// selectDate changes the selected date and recomputes everything shown for it.
func (m widgetModel) selectDate(t time.Time) widgetModel {
	m.date = t
	m.result = moon.Calculate(t)
	m.input.SetValue(moon.FormatInput(t))
	m.input.CursorEnd()
	m.status = ""
	m.failed = false
	return m
}

func (m widgetModel) fail(msg string) widgetModel {
	m.status = msg
	m.failed = true
	return m
}

func (m widgetModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		t, err := moon.ParseDate(m.input.Value(), m.date.Location())
		if err != nil {
			return m.fail(err.Error()), nil
		}
		return m.selectDate(t), nil
	case "ctrl+t":
		return m.selectDate(now().In(m.date.Location())), nil
	case "ctrl+r":
		if m.random == nil {
			return m, nil
		}
		t, err := m.random()
		if err != nil {
			return m.fail(err.Error()), nil
		}
		return m.selectDate(t), nil
	case "up":
		return m.selectDate(m.date.AddDate(0, 0, -1)), nil
	case "down":
		return m.selectDate(m.date.AddDate(0, 0, 1)), nil
	case "pgup":
		return m.selectDate(m.date.AddDate(0, 0, -monthStep)), nil
	case "pgdown":
		return m.selectDate(m.date.AddDate(0, 0, monthStep)), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m widgetModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Moon Phase Calculator"))
	b.WriteString("\n\n")
	b.WriteString("Date: " + m.input.View())
	b.WriteString("\n\n")

	disk := strings.TrimRight(output.RenderDisk(moon.Shadow(m.result.Fraction), output.DefaultDiskRows), "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, disk, panelStyle.Render(m.infoPanel())))
	b.WriteString("\n\n")

	if m.status != "" {
		status := m.status
		if m.failed {
			status = errStyle.Render(status)
		}
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter go · ctrl+t today · ctrl+r random · ↑/↓ day · pgup/pgdn 29 days · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// infoPanel lists the values computed for the selected date.
func (m widgetModel) infoPanel() string {
	res := m.result
	lines := []string{
		titleStyle.Render(res.Phase.String()),
		moon.FormatLong(res.Date),
		"",
		fmt.Sprintf("Illumination: %d%%", res.Illumination),
		fmt.Sprintf("Days since new moon: %d", res.DaysSinceNew),
	}
	return strings.Join(lines, "\n")
}
