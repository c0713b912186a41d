package guides

// Troubleshooting returns the common-problems page.
func (g *Guides) Troubleshooting() string { return g.troubleshooting }

// CheatSheet returns the commands and snippets page.
func (g *Guides) CheatSheet() string { return g.cheatSheet }

// SetupNewProject returns the condensed single-page setup walkthrough.
func (g *Guides) SetupNewProject() string { return g.setupNewProject }
