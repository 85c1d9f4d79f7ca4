package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/budget-doctor/model"
)

type service struct {
	client *ec2.Client
}

// EC2Service exposes the running compute inventory as a usage data source
type EC2Service interface {
	FetchRunningInstances(ctx context.Context) ([]model.InstanceUsage, error)
}
