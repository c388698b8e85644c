package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconArrow    = "\uf061" // arrow right
	IconFont     = "\uf031" // font
	IconLanguage = "\uf1ab" // language
	IconLayers   = "\uf5fd" // layer group
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop
)
