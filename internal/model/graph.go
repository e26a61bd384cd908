package model

// Analysis selects which derived dataset a graph shows.
type Analysis string

const (
	AnalysisCompletion Analysis = "Completion"
	AnalysisPriority   Analysis = "Priority"
	AnalysisPerDay     Analysis = "PerDay"
	AnalysisStreak     Analysis = "Streak"
)

// ChartType selects how a dataset is rendered. It is meaningless for
// AnalysisStreak, which displays as a single number.
type ChartType string

const (
	ChartBar  ChartType = "Bar"
	ChartLine ChartType = "Line"
	ChartPie  ChartType = "Pie"
)

// GraphConfig is one user-requested chart on the tracker page.
type GraphConfig struct {
	ID       int
	Analysis Analysis
	Type     ChartType
}

// MaxGraphs is the most charts that may be displayed at once.
const MaxGraphs = 4

// GraphSet holds the currently displayed graphs, capped at MaxGraphs.
type GraphSet struct {
	graphs []GraphConfig
	nextID int
}

// Add appends a new graph and reports whether it was accepted.
// Adding beyond MaxGraphs is silently rejected and leaves the set unchanged.
func (g *GraphSet) Add(analysis Analysis, chart ChartType) bool {
	if len(g.graphs) >= MaxGraphs {
		return false
	}
	g.nextID++
	g.graphs = append(g.graphs, GraphConfig{ID: g.nextID, Analysis: analysis, Type: chart})
	return true
}

// Remove deletes the graph with the given id; unknown ids are a no-op.
func (g *GraphSet) Remove(id int) {
	for i, cfg := range g.graphs {
		if cfg.ID == id {
			g.graphs = append(g.graphs[:i], g.graphs[i+1:]...)
			return
		}
	}
}

// All returns the graphs in insertion order.
func (g *GraphSet) All() []GraphConfig {
	out := make([]GraphConfig, len(g.graphs))
	copy(out, g.graphs)
	return out
}

// Len returns the number of displayed graphs.
func (g *GraphSet) Len() int {
	return len(g.graphs)
}
