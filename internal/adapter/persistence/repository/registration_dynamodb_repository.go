package repository

import (
	"context"
	"errors"
	"time"

	"github.com/grupo95-symposium/registration-service/internal/domain/entities"
	"github.com/grupo95-symposium/registration-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRegistrationsTableName = "registrations"
	registrationsOwnerIndex       = "owner_id-index"

	// guard rows share the table under this id prefix; they carry no
	// owner_account_id attribute so they stay out of the sparse owner GSI
	activeGuardPrefix = "active#"
)

type teamMemberItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

type historyEntryItem struct {
	Kind string                 `dynamodbav:"kind"`
	At   string                 `dynamodbav:"at"`
	Data map[string]interface{} `dynamodbav:"data,omitempty"`
}

type paymentSummaryItem struct {
	Method           string `dynamodbav:"method"`
	Currency         string `dynamodbav:"currency"`
	AmountPaise      int64  `dynamodbav:"amount_paise"`
	Status           string `dynamodbav:"status"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id,omitempty"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	VerifiedAt       string `dynamodbav:"verified_at,omitempty"`
}

type registrationItem struct {
	ID             string             `dynamodbav:"id"`
	EventRef       string             `dynamodbav:"event_ref"`
	EventName      string             `dynamodbav:"event_name,omitempty"`
	OwnerAccountID string             `dynamodbav:"owner_account_id"`
	OwnerEmail     string             `dynamodbav:"owner_email"`
	Kind           string             `dynamodbav:"kind"`
	TeamName       string             `dynamodbav:"team_name,omitempty"`
	TeamMembers    []teamMemberItem   `dynamodbav:"team_members,omitempty"`
	Status         string             `dynamodbav:"status"`
	Payment        paymentSummaryItem `dynamodbav:"payment"`
	History        []historyEntryItem `dynamodbav:"history,omitempty"`
	Notes          string             `dynamodbav:"notes,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

type activeGuardItem struct {
	ID             string `dynamodbav:"id"`
	RegistrationID string `dynamodbav:"registration_id"`
}

// RegistrationDynamoRepository persists Registration entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_account_id, SK: created_at)
//
// At most one active (pending|confirmed) registration may exist per
// (event, owner). That constraint is a guard row "active#<event>#<owner>"
// written in the same transaction as the registration, with a
// condition that the guard does not exist yet. Losing the race surfaces as
// interfaces.ErrActiveRegistrationExists, which callers recover by
// re-reading the winner.

type RegistrationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRegistrationRepository = (*RegistrationDynamoRepository)(nil)

func NewRegistrationDynamoRepository(ddb *dynamodb.Client) *RegistrationDynamoRepository {
	return &RegistrationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REGISTRATIONS_TABLE", defaultRegistrationsTableName),
	}
}

func (r *RegistrationDynamoRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	regAV, err := attributevalue.MarshalMap(toRegistrationItem(reg))
	if err != nil {
		return entities.Registration{}, err
	}
	guardAV, err := attributevalue.MarshalMap(activeGuardItem{
		ID:             activeGuardPrefix + entities.ActiveKey(reg.EventRef, reg.OwnerAccountID),
		RegistrationID: reg.ID,
	})
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                guardAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                regAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Registration{}, interfaces.ErrActiveRegistrationExists
		}
		return entities.Registration{}, err
	}
	return reg, nil
}

func (r *RegistrationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}

	var it registrationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Registration{}, err
	}
	return fromRegistrationItem(it), nil
}

// FindActive resolves the guard row first so the read is strongly consistent
// with the uniqueness constraint, then loads the registration it points to.
func (r *RegistrationDynamoRepository) FindActive(ctx context.Context, eventRef, ownerAccountID string) (entities.Registration, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: activeGuardPrefix + entities.ActiveKey(eventRef, ownerAccountID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Registration{}, err
	}
	if len(out.Item) == 0 {
		return entities.Registration{}, nil
	}

	var guard activeGuardItem
	if err := attributevalue.UnmarshalMap(out.Item, &guard); err != nil {
		return entities.Registration{}, err
	}
	return r.GetByID(ctx, guard.RegistrationID)
}

func (r *RegistrationDynamoRepository) ListByOwner(ctx context.Context, ownerAccountID string) ([]entities.Registration, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(registrationsOwnerIndex),
		KeyConditionExpression: aws.String("owner_account_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerAccountID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Registration, 0, len(out.Items))
	for _, raw := range out.Items {
		var it registrationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRegistrationItem(it))
	}
	return items, nil
}

func (r *RegistrationDynamoRepository) Update(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	av, err := attributevalue.MarshalMap(toRegistrationItem(reg))
	if err != nil {
		return entities.Registration{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Registration{}, err
	}
	return reg, nil
}

// isConditionalCancellation reports whether a transaction was cancelled by a
// failed condition (the guard row already existed).
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		var ccf *types.ConditionalCheckFailedException
		return errors.As(err, &ccf)
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toRegistrationItem(reg entities.Registration) registrationItem {
	it := registrationItem{
		ID:             reg.ID,
		EventRef:       reg.EventRef,
		EventName:      reg.EventName,
		OwnerAccountID: reg.OwnerAccountID,
		OwnerEmail:     reg.OwnerEmail,
		Kind:           string(reg.Kind),
		TeamName:       reg.TeamName,
		Status:         string(reg.Status),
		Payment: paymentSummaryItem{
			Method:           reg.Payment.Method,
			Currency:         reg.Payment.Currency,
			AmountPaise:      reg.Payment.AmountPaise,
			Status:           string(reg.Payment.Status),
			GatewayOrderID:   reg.Payment.GatewayOrderID,
			GatewayPaymentID: reg.Payment.GatewayPaymentID,
		},
		Notes:     reg.Notes,
		CreatedAt: reg.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: reg.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if reg.Payment.VerifiedAt != nil {
		it.Payment.VerifiedAt = reg.Payment.VerifiedAt.UTC().Format(time.RFC3339Nano)
	}
	for _, m := range reg.TeamMembers {
		it.TeamMembers = append(it.TeamMembers, teamMemberItem(m))
	}
	for _, h := range reg.History {
		it.History = append(it.History, historyEntryItem{
			Kind: h.Kind,
			At:   h.At.UTC().Format(time.RFC3339Nano),
			Data: h.Data,
		})
	}
	return it
}

func fromRegistrationItem(it registrationItem) entities.Registration {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	reg := entities.Registration{
		ID:             it.ID,
		EventRef:       it.EventRef,
		EventName:      it.EventName,
		OwnerAccountID: it.OwnerAccountID,
		OwnerEmail:     it.OwnerEmail,
		Kind:           entities.RegistrationKind(it.Kind),
		TeamName:       it.TeamName,
		Status:         entities.RegistrationStatus(it.Status),
		Payment: entities.PaymentSummary{
			Method:           it.Payment.Method,
			Currency:         it.Payment.Currency,
			AmountPaise:      it.Payment.AmountPaise,
			Status:           entities.PaymentState(it.Payment.Status),
			GatewayOrderID:   it.Payment.GatewayOrderID,
			GatewayPaymentID: it.Payment.GatewayPaymentID,
		},
		Notes:     it.Notes,
		CreatedAt: created,
		UpdatedAt: updated,
	}
	if it.Payment.VerifiedAt != "" {
		if dt, err := time.Parse(time.RFC3339Nano, it.Payment.VerifiedAt); err == nil {
			reg.Payment.VerifiedAt = &dt
		}
	}
	for _, m := range it.TeamMembers {
		reg.TeamMembers = append(reg.TeamMembers, entities.TeamMember(m))
	}
	for _, h := range it.History {
		at, _ := time.Parse(time.RFC3339Nano, h.At)
		reg.History = append(reg.History, entities.HistoryEntry{Kind: h.Kind, At: at, Data: h.Data})
	}
	return reg
}
