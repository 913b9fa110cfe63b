package rdb

import "time"

// DeploymentRecord is the persisted shape of a deployment history entry.
type DeploymentRecord struct {
	ID          string `gorm:"primaryKey"`
	StackName   string `gorm:"index"`
	Suffix      string
	PackageHash string
	AppName     string
	Hostname    string
	State       string
	Error       string
	StartedAt   time.Time `gorm:"index"`
	FinishedAt  time.Time
}

// TableName pins the table name independent of GORM pluralization.
func (DeploymentRecord) TableName() string { return "deployments" }
