// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package views

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/splasp-tui/internal/api"
	"github.com/morganforge/splasp-tui/internal/history"
	"github.com/morganforge/splasp-tui/internal/ui/components"
	"github.com/morganforge/splasp-tui/internal/ui/styles"
)

// =============================================================================
// PROJECTS VIEW
// =============================================================================

// projectsMode selects the sub-screen of the projects view.
type projectsMode int

const (
	projectsList projectsMode = iota
	projectsAnalyze
	projectsResult
)

// projectsModel lists the user's analyzed projects and hosts the
// analyze-upload flow plus the result display.
type projectsModel struct {
	theme *styles.Theme
	mode  projectsMode

	projects []api.Project
	selected int
	loading  bool

	// Analyze form
	pathInput    textinput.Model
	sessionInput textinput.Model
	formFocus    int
	uploading    bool
	errText      string

	// Last result
	result     *api.AnalysisResult
	resultFile string
}

func newProjectsModel(theme *styles.Theme) projectsModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/project.xml"
	pathInput.CharLimit = 256

	sessionInput := textinput.New()
	sessionInput.Placeholder = "session id (blank = current)"
	sessionInput.CharLimit = 10

	return projectsModel{
		theme:        theme,
		pathInput:    pathInput,
		sessionInput: sessionInput,
	}
}

func (p *projectsModel) update(a *App, msg tea.Msg) tea.Cmd {
	switch p.mode {
	case projectsAnalyze:
		return p.updateAnalyze(a, msg)
	case projectsResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, a.keys.Back) {
			p.mode = projectsList
		}
		return nil
	default:
		return p.updateList(a, msg)
	}
}

func (p *projectsModel) updateList(a *App, msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, a.keys.Up):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(keyMsg, a.keys.Down):
		if p.selected < len(p.projects)-1 {
			p.selected++
		}
	case key.Matches(keyMsg, a.keys.Refresh):
		p.loading = true
		return a.loadProjectsCmd()
	case key.Matches(keyMsg, a.keys.Analyze):
		p.enterAnalyze(a)
	case key.Matches(keyMsg, a.keys.Submit):
		// Re-open the stored result of the selected project
		if p.selected < len(p.projects) && p.projects[p.selected].Result != nil {
			p.result = p.projects[p.selected].Result
			p.resultFile = p.projects[p.selected].Filename
			p.mode = projectsResult
		}
	}
	return nil
}

// enterAnalyze opens the upload form, pre-filling the session from the
// one joined on the home view.
func (p *projectsModel) enterAnalyze(a *App) {
	p.mode = projectsAnalyze
	p.errText = ""
	p.uploading = false
	p.pathInput.SetValue("")
	p.sessionInput.SetValue("")
	if a.home.joined != nil {
		p.sessionInput.SetValue(strconv.Itoa(a.home.joined.ID))
	}
	p.formFocus = 0
	p.pathInput.Focus()
	p.sessionInput.Blur()
}

func (p *projectsModel) updateAnalyze(a *App, msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !p.uploading {
		switch {
		case key.Matches(keyMsg, a.keys.Back):
			p.mode = projectsList
			return nil
		case key.Matches(keyMsg, a.keys.Submit):
			if p.formFocus == 0 {
				p.setFormFocus(1)
				return nil
			}
			return p.submitAnalyze(a)
		case key.Matches(keyMsg, a.keys.NextField):
			p.setFormFocus((p.formFocus + 1) % 2)
			return nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.pathInput, cmd = p.pathInput.Update(msg)
	cmds = append(cmds, cmd)
	p.sessionInput, cmd = p.sessionInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (p *projectsModel) setFormFocus(i int) {
	p.formFocus = i
	if i == 0 {
		p.pathInput.Focus()
		p.sessionInput.Blur()
	} else {
		p.pathInput.Blur()
		p.sessionInput.Focus()
	}
}

func (p *projectsModel) submitAnalyze(a *App) tea.Cmd {
	path := strings.TrimSpace(p.pathInput.Value())
	if path == "" {
		p.errText = "file path is required"
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xml") {
		p.errText = "only Snap! XML exports can be analyzed"
		return nil
	}

	sessionID := 0
	if v := strings.TrimSpace(p.sessionInput.Value()); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id < 0 {
			p.errText = "session id must be a number"
			return nil
		}
		sessionID = id
	}

	p.errText = ""
	p.uploading = true
	return a.analyzeCmd(path, sessionID)
}

func (p *projectsModel) handle(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			return a.toasts.Push(components.NewErrorToast(
				"could not load projects: " + friendlyError(msg.err)))
		}
		p.projects = msg.projects
		if p.selected >= len(p.projects) {
			p.selected = 0
		}

	case analyzeDoneMsg:
		p.uploading = false
		if msg.err != nil {
			p.errText = friendlyError(msg.err)
			return nil
		}
		p.result = msg.result
		p.resultFile = msg.filename
		p.mode = projectsResult

		sessionID := ""
		if v := strings.TrimSpace(p.sessionInput.Value()); v != "" {
			sessionID = v
		}
		return tea.Batch(
			a.recordRunCmd(history.Run{
				Filename:          msg.filename,
				SessionID:         sessionID,
				ProjectLevel:      levelLabel(msg.result.ProjectLevel),
				BlockCount:        len(msg.result.Blocks),
				TotalScripts:      msg.result.TotalScripts,
				DuplicateScripts:  msg.result.DuplicateScripts,
				TotalCombinations: msg.result.TotalCombinations,
				DeadFeatures:      len(msg.result.DeadFeatures),
			}),
			a.loadProjectsCmd(),
		)
	}
	return nil
}

// =============================================================================
// RENDERING
// =============================================================================

func (p *projectsModel) view(a *App) string {
	switch p.mode {
	case projectsAnalyze:
		return p.viewAnalyze(a)
	case projectsResult:
		return p.viewResult(a)
	default:
		return p.viewList(a)
	}
}

func (p *projectsModel) viewList(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("My Projects"))
	sb.WriteString("\n\n")

	if p.loading {
		sb.WriteString(a.theme.InfoStyle.Render("loading..."))
		return sb.String()
	}
	if len(p.projects) == 0 {
		sb.WriteString(a.theme.FormHint.Render("No analyzed projects yet. Press 'a' to upload one."))
		return sb.String()
	}

	tbl := components.NewTable(a.theme,
		components.Column{Title: "ID", Width: 5},
		components.Column{Title: "File", Width: 28},
		components.Column{Title: "Session", Width: 8},
		components.Column{Title: "Uploaded", Width: 16},
	)
	tbl.Selected = p.selected

	rows := make([][]string, 0, len(p.projects))
	for _, proj := range p.projects {
		rows = append(rows, []string{
			strconv.Itoa(proj.ID),
			proj.Filename,
			strconv.Itoa(proj.SessionID),
			proj.UploadedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	sb.WriteString(tbl.View(rows))
	sb.WriteString("\n\n")
	sb.WriteString(a.theme.FormHint.Render("Enter opens the stored result of the selected project."))
	return sb.String()
}

func (p *projectsModel) viewAnalyze(a *App) string {
	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Analyze project"))
	sb.WriteString("\n\n")

	sb.WriteString(fieldLabel(a, "Snap! XML file", p.formFocus == 0))
	sb.WriteString("\n")
	sb.WriteString(p.pathInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(fieldLabel(a, "Session", p.formFocus == 1))
	sb.WriteString("\n")
	sb.WriteString(p.sessionInput.View())
	sb.WriteString("\n")

	if p.uploading {
		sb.WriteString("\n" + a.theme.InfoStyle.Render("uploading and analyzing..."))
	}
	if p.errText != "" {
		sb.WriteString("\n" + a.theme.FormError.Render(p.errText))
	}

	return a.theme.FormBox.Render(sb.String())
}

func (p *projectsModel) viewResult(a *App) string {
	r := p.result
	if r == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(a.theme.ResultTitle.Render("Analysis: " + p.resultFile))
	sb.WriteString("\n\n")

	level := levelLabel(r.ProjectLevel)
	stat := func(label, value string) {
		sb.WriteString(a.theme.StatsLabel.Render(fmt.Sprintf("%-22s", label)))
		sb.WriteString(a.theme.StatsValue.Render(value))
		sb.WriteString("\n")
	}
	sb.WriteString(a.theme.StatsLabel.Render(fmt.Sprintf("%-22s", "Project level")))
	sb.WriteString(a.theme.LevelStyle(level).Render(fmt.Sprintf("%s (%d)", level, r.ProjectLevel)))
	sb.WriteString("\n")
	stat("Total scripts", strconv.Itoa(r.TotalScripts))
	stat("Duplicate scripts", strconv.Itoa(r.DuplicateScripts))
	stat("Variant combinations", strconv.Itoa(r.TotalCombinations))

	if len(r.Blocks) > 0 {
		sb.WriteString("\n")
		sb.WriteString(a.theme.TableHeader.Render("Custom blocks"))
		sb.WriteString("\n")
		tbl := components.NewTable(a.theme,
			components.Column{Title: "Owner", Width: 12},
			components.Column{Title: "Block", Width: 20},
			components.Column{Title: "Level", Width: 5},
			components.Column{Title: "Struct", Width: 6},
			components.Column{Title: "Def", Width: 5},
		)
		rows := make([][]string, 0, len(r.Blocks))
		for _, b := range r.Blocks {
			rows = append(rows, []string{
				b.Owner,
				b.Name,
				strconv.Itoa(b.Level),
				strconv.Itoa(b.StructuralChanges),
				strconv.Itoa(b.DefinitionChanges),
			})
		}
		sb.WriteString(tbl.View(rows))
		sb.WriteString("\n")
	}

	if len(r.TanglingDict) > 0 {
		sb.WriteString("\n")
		sb.WriteString(a.theme.TableHeader.Render("Tangling"))
		sb.WriteString("\n")
		sb.WriteString(renderTangling(a, r.TanglingDict))
	}
	if len(r.ScatteringDict) > 0 {
		sb.WriteString("\n")
		sb.WriteString(a.theme.TableHeader.Render("Scattering"))
		sb.WriteString("\n")
		sb.WriteString(renderScattering(a, r.ScatteringDict))
	}
	if len(r.DeadFeatures) > 0 {
		sb.WriteString("\n")
		sb.WriteString(a.theme.WarningStyle.Render(
			fmt.Sprintf("Dead features (%d): ", len(r.DeadFeatures))))
		sb.WriteString(strings.Join(r.DeadFeatures, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(a.theme.FormHint.Render("Esc returns to the project list."))
	return a.theme.ResultBox.Render(sb.String())
}

// renderTangling prints script -> feature-count pairs in script order.
func renderTangling(a *App, dict map[int]int) string {
	scripts := make([]int, 0, len(dict))
	for s := range dict {
		scripts = append(scripts, s)
	}
	sort.Ints(scripts)

	var sb strings.Builder
	for _, s := range scripts {
		sb.WriteString(a.theme.StatsLabel.Render(fmt.Sprintf("  script %-4d", s)))
		sb.WriteString(a.theme.StatsValue.Render(fmt.Sprintf("%d features", dict[s])))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderScattering prints feature -> script-list pairs in name order.
func renderScattering(a *App, dict map[string][]int) string {
	features := make([]string, 0, len(dict))
	for f := range dict {
		features = append(features, f)
	}
	sort.Strings(features)

	var sb strings.Builder
	for _, f := range features {
		scripts := make([]string, 0, len(dict[f]))
		for _, s := range dict[f] {
			scripts = append(scripts, strconv.Itoa(s))
		}
		sb.WriteString(a.theme.StatsLabel.Render(fmt.Sprintf("  %-16s", f)))
		sb.WriteString(a.theme.StatsValue.Render("scripts " + strings.Join(scripts, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// levelLabel maps the numeric project level to a display band.
func levelLabel(level int) string {
	switch {
	case level <= 0:
		return "NONE"
	case level == 1:
		return "LOW"
	case level == 2:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}
