package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	packageListWidthRatio = 0.35
	detailBorderWidth     = 4
)

// PackageStatus represents the current state of a package.
type PackageStatus string

const (
	// StatusPending indicates the package is waiting for a worker.
	StatusPending PackageStatus = "Pending"
	// StatusRunning indicates the package is being fetched.
	StatusRunning PackageStatus = "Running"
	// StatusFetched indicates every enabled channel was resolved.
	StatusFetched PackageStatus = "Fetched"
	// StatusSkipped indicates the chance draw kept the recorded versions.
	StatusSkipped PackageStatus = "Skipped"
	// StatusFailed indicates a channel failed and the recorded versions were kept.
	StatusFailed PackageStatus = "Failed"
	// StatusAborted indicates the package could not produce any versions.
	StatusAborted PackageStatus = "Aborted"
)

func statusFromOutcome(outcome string) PackageStatus {
	switch outcome {
	case "fetched":
		return StatusFetched
	case "skipped":
		return StatusSkipped
	case "failed":
		return StatusFailed
	default:
		return StatusAborted
	}
}

// ChannelNode is one channel fetch of a package.
type ChannelNode struct {
	Name    string
	Running bool
	Err     error
}

// PackageNode represents a single package in the UI list.
type PackageNode struct {
	Name     string
	Status   PackageStatus
	Channels []*ChannelNode
	Err      error
	Start    time.Time
	End      time.Time
}

// Done reports whether the package has finished, whatever the outcome.
func (p *PackageNode) Done() bool {
	return p.Status != StatusPending && p.Status != StatusRunning
}

// Model represents the main TUI state.
type Model struct {
	Packages     []*PackageNode
	PackageMap   map[string]*PackageNode
	SpanMap      map[string]*PackageNode
	ChannelSpans map[string]*ChannelNode
	SelectedIdx  int
	ListOffset   int
	ListHeight   int
	DetailWidth  int
	FollowMode   bool
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// Selected returns the package shown in the detail pane.
func (m *Model) Selected() *PackageNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Packages) {
		return m.Packages[m.SelectedIdx]
	}
	return nil
}

func (m *Model) selectName(name string) {
	for i, p := range m.Packages {
		if p.Name == name {
			m.SelectedIdx = i
			m.ensureVisible()
			return
		}
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Packages)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
			}
		case "esc":
			m.FollowMode = true
			for _, p := range m.Packages {
				if p.Status == StatusRunning {
					m.selectName(p.Name)
					break
				}
			}
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * packageListWidthRatio)
		m.DetailWidth = msg.Width - listWidth - detailBorderWidth

		header := titleStyle.Render("PACKAGES") + "\n\n"
		m.ListHeight = msg.Height - lipgloss.Height(header)
		m.ensureVisible()

	case MsgPlan:
		m.Packages = make([]*PackageNode, len(msg.Packages))
		m.PackageMap = make(map[string]*PackageNode, len(msg.Packages))
		m.SpanMap = make(map[string]*PackageNode)
		m.ChannelSpans = make(map[string]*ChannelNode)
		m.SelectedIdx, m.ListOffset = 0, 0
		for i, name := range msg.Packages {
			m.Packages[i] = &PackageNode{Name: name, Status: StatusPending}
			m.PackageMap[name] = m.Packages[i]
		}

	case MsgFetchStart:
		m.start(msg)

	case MsgFetchComplete:
		m.complete(msg)
	}

	return m, nil
}

func (m *Model) start(msg MsgFetchStart) {
	if msg.ParentID != "" {
		if parent, ok := m.SpanMap[msg.ParentID]; ok {
			ch := &ChannelNode{Name: msg.Name, Running: true}
			parent.Channels = append(parent.Channels, ch)
			m.ChannelSpans[msg.SpanID] = ch
		}
		return
	}

	node, ok := m.PackageMap[msg.Name]
	if !ok {
		return
	}
	node.Status = StatusRunning
	node.Start = msg.StartTime
	m.SpanMap[msg.SpanID] = node

	if m.FollowMode {
		m.selectName(msg.Name)
	}
}

func (m *Model) complete(msg MsgFetchComplete) {
	if ch, ok := m.ChannelSpans[msg.SpanID]; ok {
		ch.Running = false
		ch.Err = msg.Err
		delete(m.ChannelSpans, msg.SpanID)
		return
	}

	if node, ok := m.SpanMap[msg.SpanID]; ok {
		node.Status = statusFromOutcome(msg.Outcome)
		node.Err = msg.Err
		node.End = msg.EndTime
	}
}

// Progress returns the number of finished packages, the failed or aborted ones among them,
// and the total.
func (m *Model) Progress() (done, failed, total int) {
	for _, p := range m.Packages {
		if !p.Done() {
			continue
		}
		done++
		if p.Status == StatusFailed || p.Status == StatusAborted {
			failed++
		}
	}
	return done, failed, len(m.Packages)
}
