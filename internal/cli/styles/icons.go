package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	// About
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconConfig    = "\ue615" // config
	IconDatabase  = "\uf1c0" // database

	// Doctor
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconWrench  = "\uf0ad" // wrench
)
