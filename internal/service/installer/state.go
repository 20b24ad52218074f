package installer

// InstallState collects the answers gathered by the wizard steps.
type InstallState struct {
	Token  string
	Prefix string
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
