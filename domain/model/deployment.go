package model

import "time"

// Deployment states recorded in the history store.
const (
	DeploymentStateRunning   = "running"
	DeploymentStateSucceeded = "succeeded"
	DeploymentStateFailed    = "failed"
)

// Deployment is one recorded deploy of a stack.
type Deployment struct {
	ID          string
	StackName   string
	Suffix      string // name suffix resolved for this deploy
	PackageHash string // content hash of the uploaded archive
	AppName     string
	Hostname    string
	State       string
	Error       string
	StartedAt   time.Time
	FinishedAt  time.Time
}
