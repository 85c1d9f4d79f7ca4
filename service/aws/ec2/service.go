package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/budget-doctor/model"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// FetchRunningInstances implements service.UsageDataSource. DescribeInstances
// is free, so nothing is metered here.
func (s *service) FetchRunningInstances(ctx context.Context) ([]model.InstanceUsage, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	}

	var instances []model.InstanceUsage

	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, model.InstanceUsage{
					ID:           aws.ToString(instance.InstanceId),
					Name:         instanceName(instance.Tags),
					InstanceType: string(instance.InstanceType),
					State:        string(instance.State.Name),
				})
			}
		}
	}

	return instances, nil
}

func instanceName(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
