package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshInterval = 5 * time.Second

// boardData mirrors the backend's GET /board response.
type boardData struct {
	Rulesets  []string      `json:"rulesets"`
	Pars      []*int        `json:"pars"`
	Languages []string      `json:"languages"`
	Cells     [][]boardCell `json:"cells"`
	Teams     []string      `json:"teams"`
	Scores    []teamScore   `json:"scores"`
}

type boardCell struct {
	Owners       []int `json:"owners"`
	Solvers      []int `json:"solvers"`
	Score        *int  `json:"score"`
	SubmissionID *int  `json:"submissionId"`
}

type teamScore struct {
	Lines  int `json:"lines"`
	Solves int `json:"solves"`
	Owners int `json:"owners"`
}

type boardMsg boardData

type errMsg struct{ err error }

type tickMsg time.Time

type model struct {
	apiBase string
	spinner spinner.Model
	board   *boardData
	err     error
}

func initialModel(apiBase string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return model{
		apiBase: apiBase,
		spinner: s,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchBoard(m.apiBase))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, fetchBoard(m.apiBase)
		}
	case boardMsg:
		board := boardData(msg)
		m.board = &board
		m.err = nil
		return m, tick()
	case errMsg:
		m.err = msg.err
		return m, tick()
	case tickMsg:
		return m, fetchBoard(m.apiBase)
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.board == nil && m.err == nil {
		return fmt.Sprintf("\n %s loading board...\n\n press q to quit\n", m.spinner.View())
	}
	if m.err != nil && m.board == nil {
		return fmt.Sprintf("\n failed to load board: %v\n\n press r to retry, q to quit\n", m.err)
	}

	s := renderBoard(m.board)
	if m.err != nil {
		s += fmt.Sprintf("\n (stale: last refresh failed: %v)\n", m.err)
	}
	s += "\n press r to refresh, q to quit\n"
	return s
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchBoard(apiBase string) tea.Cmd {
	return func() tea.Msg {
		res, err := http.Get(apiBase + "/board")
		if err != nil {
			return errMsg{err: err}
		}
		defer res.Body.Close()

		var envelope struct {
			Status string    `json:"status"`
			Data   boardData `json:"data"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
			return errMsg{err: err}
		}
		if envelope.Status != "success" {
			return errMsg{err: fmt.Errorf("backend returned status %q", envelope.Status)}
		}
		return boardMsg(envelope.Data)
	}
}
