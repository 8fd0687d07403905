package repository

import (
	"context"
	"encoding/json"
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
	defaultPaymentIntentsTableName = "payment_intents"
	paymentIntentsOrderIDIndex     = "order_id-index"
)

type paymentIntentItem struct {
	ID               string   `dynamodbav:"id"`
	PayerAccountID   string   `dynamodbav:"payer_account_id"`
	RegistrationRef  string   `dynamodbav:"registration_ref,omitempty"`
	Kind             string   `dynamodbav:"kind"`
	CoveredEmails    []string `dynamodbav:"covered_emails"`
	AmountPaise      int64    `dynamodbav:"amount_paise"`
	Currency         string   `dynamodbav:"currency"`
	GatewayOrderID   string   `dynamodbav:"gateway_order_id"`
	GatewayPaymentID string   `dynamodbav:"gateway_payment_id,omitempty"`
	Status           string   `dynamodbav:"status"`
	Raw              string   `dynamodbav:"raw,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
	UpdatedAt        string   `dynamodbav:"updated_at"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: gateway_order_id)

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentIntent, error) {
	av, err := attributevalue.MarshalMap(toPaymentIntentItem(intent))
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	return intent, nil
}

func (r *PaymentIntentDynamoRepository) GetByOrderID(ctx context.Context, gatewayOrderID string) (entities.PaymentIntent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentIntentsOrderIDIndex),
		KeyConditionExpression: aws.String("gateway_order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: gatewayOrderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

// MarkPaid transitions created -> paid under a status condition, so it is the
// race-safe idempotency point of the reconciliation flow. When the condition
// fails (already paid) the current record is returned with applied=false.
func (r *PaymentIntentDynamoRepository) MarkPaid(ctx context.Context, id, gatewayPaymentID string, raw json.RawMessage) (entities.PaymentIntent, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #st <> :paid"),
		UpdateExpression:    aws.String("SET #st = :paid, gateway_payment_id = :pid, #raw = :raw, updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#st":  "status",
			"#raw": "raw",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid": &types.AttributeValueMemberS{Value: string(entities.IntentStatusPaid)},
			":pid":  &types.AttributeValueMemberS{Value: gatewayPaymentID},
			":raw":  &types.AttributeValueMemberS{Value: string(raw)},
			":now":  &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			current, gErr := r.getByID(ctx, id)
			if gErr != nil {
				return entities.PaymentIntent{}, false, gErr
			}
			return current, false, nil
		}
		return entities.PaymentIntent{}, false, err
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentIntent{}, false, err
	}
	return fromPaymentIntentItem(it), true, nil
}

func (r *PaymentIntentDynamoRepository) getByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	return paymentIntentItem{
		ID:               p.ID,
		PayerAccountID:   p.PayerAccountID,
		RegistrationRef:  p.RegistrationRef,
		Kind:             string(p.Kind),
		CoveredEmails:    p.CoveredEmails,
		AmountPaise:      p.AmountPaise,
		Currency:         p.Currency,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           string(p.Status),
		Raw:              string(p.RawCallbackPayload),
		CreatedAt:        p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentIntent{
		ID:                 it.ID,
		PayerAccountID:     it.PayerAccountID,
		RegistrationRef:    it.RegistrationRef,
		Kind:               entities.IntentKind(it.Kind),
		CoveredEmails:      it.CoveredEmails,
		AmountPaise:        it.AmountPaise,
		Currency:           it.Currency,
		GatewayOrderID:     it.GatewayOrderID,
		GatewayPaymentID:   it.GatewayPaymentID,
		Status:             entities.IntentStatus(it.Status),
		RawCallbackPayload: json.RawMessage(it.Raw),
		CreatedAt:          created,
		UpdatedAt:          updated,
	}
}
