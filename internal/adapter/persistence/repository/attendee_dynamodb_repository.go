package repository

import (
	"context"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAttendeesTableName = "attendees"

type attendeeItem struct {
	Email           string `dynamodbav:"email"`
	HasPaidEntryFee bool   `dynamodbav:"has_paid_entry_fee"`
	EntryFeePaidAt  string `dynamodbav:"entry_fee_paid_at,omitempty"`
}

// AttendeeDynamoRepository persists the entry-fee ledger in DynamoDB.
//
// Table requirements:
//   - PK: email (string, lowercased)
//
// A row may exist for an e-mail with no account of its own (team members are
// covered by someone else's payment), so MarkPaid upserts.

type AttendeeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttendeeRepository = (*AttendeeDynamoRepository)(nil)

func NewAttendeeDynamoRepository(ddb *dynamodb.Client) *AttendeeDynamoRepository {
	return &AttendeeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTENDEES_TABLE", defaultAttendeesTableName),
	}
}

func (r *AttendeeDynamoRepository) FindByEmails(ctx context.Context, emails []string) ([]entities.Attendee, error) {
	out := make([]entities.Attendee, 0, len(emails))
	for _, email := range emails {
		res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"email": &types.AttributeValueMemberS{Value: email},
			},
			ConsistentRead: aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		if len(res.Item) == 0 {
			continue
		}

		var it attendeeItem
		if err := attributevalue.UnmarshalMap(res.Item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromAttendeeItem(it))
	}
	return out, nil
}

// MarkPaid upserts the paid flag for every e-mail. The paid-at timestamp is
// written with if_not_exists so a replay keeps the original time.
func (r *AttendeeDynamoRepository) MarkPaid(ctx context.Context, emails []string, at time.Time) error {
	ts := at.UTC().Format(time.RFC3339Nano)
	for _, email := range emails {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"email": &types.AttributeValueMemberS{Value: email},
			},
			UpdateExpression: aws.String("SET has_paid_entry_fee = :paid, entry_fee_paid_at = if_not_exists(entry_fee_paid_at, :at)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":paid": &types.AttributeValueMemberBOOL{Value: true},
				":at":   &types.AttributeValueMemberS{Value: ts},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func fromAttendeeItem(it attendeeItem) entities.Attendee {
	a := entities.Attendee{
		Email:           it.Email,
		HasPaidEntryFee: it.HasPaidEntryFee,
	}
	if it.EntryFeePaidAt != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.EntryFeePaidAt); err == nil {
			a.EntryFeePaidAt = &dt
		}
	}
	return a
}
