package repository

import (
	"context"
	"os"
	"time"

	"marketplace_payments/internal/domain/entities"
	"marketplace_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersPaymentRefIndex  = "payment_ref-index"
)

type timelineEntryItem struct {
	Status        string `dynamodbav:"status"`
	At            string `dynamodbav:"at"`
	Via           string `dynamodbav:"via"`
	ProviderEvent string `dynamodbav:"provider_event,omitempty"`
}

type orderItem struct {
	ID            string                   `dynamodbav:"id"`
	PaymentRef    string                   `dynamodbav:"payment_ref"`
	PaymentMethod string                   `dynamodbav:"payment_method"`
	PaymentStatus string                   `dynamodbav:"payment_status"`
	Amount        float64                  `dynamodbav:"amount,omitempty"`
	Currency      string                   `dynamodbav:"currency,omitempty"`
	PaymentMeta   []map[string]interface{} `dynamodbav:"payment_meta,omitempty"`
	Timeline      []timelineEntryItem      `dynamodbav:"timeline,omitempty"`
	CreatedAt     string                   `dynamodbav:"created_at"`
	UpdatedAt     string                   `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_ref-index (PK: payment_ref)

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// FindByPaymentRef locates the order a provider webhook refers to. The query
// keys on payment_ref and the first item with a matching payment_method wins;
// the pair is assumed unique at checkout time, not enforced here.
func (r *OrderDynamoRepository) FindByPaymentRef(ctx context.Context, paymentRef string, method entities.PaymentMethod) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersPaymentRefIndex),
		KeyConditionExpression: aws.String("payment_ref = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: paymentRef},
		},
	})
	if err != nil {
		return entities.Order{}, err
	}

	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Order{}, err
		}
		if it.PaymentMethod == string(method) {
			return fromOrderItem(it), nil
		}
	}
	return entities.Order{}, nil
}

// AppendTransition applies a status transition in one UpdateItem so that
// concurrent webhooks for the same order cannot lose each other's timeline
// entries. payment_status itself stays last-write-wins.
func (r *OrderDynamoRepository) AppendTransition(ctx context.Context, orderID string, status entities.PaymentStatus, entry entities.TimelineEntry, meta map[string]interface{}) (entities.Order, error) {
	entryList, err := attributevalue.MarshalList([]timelineEntryItem{toTimelineEntryItem(entry)})
	if err != nil {
		return entities.Order{}, err
	}

	updateExpr := "SET payment_status = :st, updated_at = :ts, " +
		"timeline = list_append(if_not_exists(timeline, :empty), :entry)"
	values := map[string]types.AttributeValue{
		":st":    &types.AttributeValueMemberS{Value: string(status)},
		":ts":    &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		":entry": &types.AttributeValueMemberL{Value: entryList},
	}

	if len(meta) > 0 {
		metaList, err := attributevalue.MarshalList([]map[string]interface{}{meta})
		if err != nil {
			return entities.Order{}, err
		}
		updateExpr += ", payment_meta = list_append(if_not_exists(payment_meta, :empty), :meta)"
		values[":meta"] = &types.AttributeValueMemberL{Value: metaList}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: orderID},
		},
		UpdateExpression:          aws.String(updateExpr),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  map[string]string{"#id": "id"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toTimelineEntryItem(e entities.TimelineEntry) timelineEntryItem {
	return timelineEntryItem{
		Status:        string(e.Status),
		At:            e.At.UTC().Format(time.RFC3339Nano),
		Via:           string(e.Via),
		ProviderEvent: e.ProviderEvent,
	}
}

func fromTimelineEntryItem(it timelineEntryItem) entities.TimelineEntry {
	at, _ := time.Parse(time.RFC3339Nano, it.At)
	return entities.TimelineEntry{
		Status:        entities.PaymentStatus(it.Status),
		At:            at,
		Via:           entities.PaymentMethod(it.Via),
		ProviderEvent: it.ProviderEvent,
	}
}

func toOrderItem(o entities.Order) orderItem {
	timeline := make([]timelineEntryItem, 0, len(o.Timeline))
	for _, e := range o.Timeline {
		timeline = append(timeline, toTimelineEntryItem(e))
	}
	return orderItem{
		ID:            o.ID,
		PaymentRef:    o.PaymentRef,
		PaymentMethod: string(o.PaymentMethod),
		PaymentStatus: string(o.PaymentStatus),
		Amount:        o.Amount,
		Currency:      o.Currency,
		PaymentMeta:   o.PaymentMeta,
		Timeline:      timeline,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	timeline := make([]entities.TimelineEntry, 0, len(it.Timeline))
	for _, e := range it.Timeline {
		timeline = append(timeline, fromTimelineEntryItem(e))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Order{
		ID:            it.ID,
		PaymentRef:    it.PaymentRef,
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		Amount:        it.Amount,
		Currency:      it.Currency,
		PaymentMeta:   it.PaymentMeta,
		Timeline:      timeline,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
