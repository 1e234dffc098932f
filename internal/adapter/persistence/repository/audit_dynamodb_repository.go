package repository

import (
	"context"
	"strconv"
	"time"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	DefaultAuditTableName = "order_audit"

	// entryTimeLayout has a fixed width so entry ids sort chronologically.
	entryTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// DynamoAuditAPI is the subset of the DynamoDB client the audit log uses.
type DynamoAuditAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type auditItem struct {
	OrderID   string `dynamodbav:"order_id"`
	EntryID   string `dynamodbav:"entry_id"`
	Action    string `dynamodbav:"action"`
	OldStatus string `dynamodbav:"old_status"`
	NewStatus string `dynamodbav:"new_status"`
	ActorID   int64  `dynamodbav:"actor_id"`
	ActorRole string `dynamodbav:"actor_role"`
	Detail    string `dynamodbav:"detail,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AuditDynamoRepository persists order audit entries in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: entry_id (string)
type AuditDynamoRepository struct {
	ddb       DynamoAuditAPI
	tableName string
}

var _ interfaces.IAuditLog = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb DynamoAuditAPI, tableName string) *AuditDynamoRepository {
	if tableName == "" {
		tableName = DefaultAuditTableName
	}
	return &AuditDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.EntryID == "" {
		e.EntryID = e.CreatedAt.UTC().Format(entryTimeLayout) + "#" + uuid.NewString()
	}
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#entry_id)"),
		ExpressionAttributeNames: map[string]string{
			"#entry_id": "entry_id",
		},
	})
	if err != nil {
		return workflow.NewStoreError("append audit", err)
	}
	return nil
}

// ListByOrder returns the entries of an order, oldest first.
func (r *AuditDynamoRepository) ListByOrder(ctx context.Context, orderID int64) ([]entities.AuditEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: strconv.FormatInt(orderID, 10)},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})

	entries := []entities.AuditEntry{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, workflow.NewStoreError("list audit", err)
		}
		for _, raw := range out.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromAuditItem(it))
		}
	}
	return entries, nil
}

func toAuditItem(e entities.AuditEntry) auditItem {
	return auditItem{
		OrderID:   strconv.FormatInt(e.OrderID, 10),
		EntryID:   e.EntryID,
		Action:    e.Action,
		OldStatus: string(e.OldStatus),
		NewStatus: string(e.NewStatus),
		ActorID:   e.ActorID,
		ActorRole: string(e.ActorRole),
		Detail:    e.Detail,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAuditItem(it auditItem) entities.AuditEntry {
	orderID, _ := strconv.ParseInt(it.OrderID, 10, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.AuditEntry{
		OrderID:   orderID,
		EntryID:   it.EntryID,
		Action:    it.Action,
		OldStatus: entities.OrderStatus(it.OldStatus),
		NewStatus: entities.OrderStatus(it.NewStatus),
		ActorID:   it.ActorID,
		ActorRole: entities.Role(it.ActorRole),
		Detail:    it.Detail,
		CreatedAt: createdAt,
	}
}
