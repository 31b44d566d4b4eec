package repository

import (
	"context"
	"strconv"

	"analysis_billing/internal/domain/entities"
	"analysis_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAnalysesTableName = "analyses"
	analysesPaymentIDIndex   = "payment_id-index"
)

type analysisRecordItem struct {
	ID                string `dynamodbav:"id"`
	PaymentStatus     string `dynamodbav:"payment_status,omitempty"`
	PaymentDetail     string `dynamodbav:"payment_detail,omitempty"`
	PaymentID         int64  `dynamodbav:"payment_id,omitempty"`
	PaymentMethod     string `dynamodbav:"payment_method,omitempty"`
	IsPremiumAnalysis bool   `dynamodbav:"is_premium_analysis"`
}

// AnalysisRecordDynamoRepository persists AnalysisRecord payment fields in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string, the analysis id)
//   - GSI: payment_id-index (PK: payment_id, number)
//
// Records are created by the save flow with many more attributes than the
// ones mapped here; this repository only ever touches the payment fields,
// so writes go through UpdateItem SET expressions (merge semantics) rather
// than PutItem, which would clobber the rest of the document.

type AnalysisRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAnalysisRecordRepository = (*AnalysisRecordDynamoRepository)(nil)

func NewAnalysisRecordDynamoRepository(ddb *dynamodb.Client) *AnalysisRecordDynamoRepository {
	return &AnalysisRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ANALYSES_TABLE", defaultAnalysesTableName),
	}
}

func (r *AnalysisRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.AnalysisRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AnalysisRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.AnalysisRecord{}, nil
	}

	var it analysisRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AnalysisRecord{}, err
	}
	return fromAnalysisRecordItem(it), nil
}

// UpsertPaymentFields merges payment fields into the record, creating the
// item when the save flow has not persisted it yet (UpdateItem upserts by
// key). The premium flag is only ever included when MarkPremium is set, so
// the update can never flip it back to false; replayed webhook deliveries
// re-apply identical values, which keeps the write idempotent.
func (r *AnalysisRecordDynamoRepository) UpsertPaymentFields(ctx context.Context, analysisID string, update entities.PaymentUpdate) error {
	expr := "SET #payment_status = :payment_status, #payment_detail = :payment_detail, #payment_id = :payment_id"
	names := map[string]string{
		"#payment_status": "payment_status",
		"#payment_detail": "payment_detail",
		"#payment_id":     "payment_id",
	}
	values := map[string]types.AttributeValue{
		":payment_status": &types.AttributeValueMemberS{Value: update.PaymentStatus},
		":payment_detail": &types.AttributeValueMemberS{Value: update.PaymentDetail},
		":payment_id":     &types.AttributeValueMemberN{Value: strconv.FormatInt(update.PaymentID, 10)},
	}

	if update.PaymentMethod != "" {
		expr += ", #payment_method = :payment_method, #analysis_id = :analysis_id"
		names["#payment_method"] = "payment_method"
		names["#analysis_id"] = "analysis_id"
		values[":payment_method"] = &types.AttributeValueMemberS{Value: update.PaymentMethod}
		values[":analysis_id"] = &types.AttributeValueMemberS{Value: analysisID}
	}

	if update.MarkPremium {
		expr += ", #is_premium_analysis = :is_premium_analysis"
		names["#is_premium_analysis"] = "is_premium_analysis"
		values[":is_premium_analysis"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: analysisID},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

// FindByPaymentID resolves the record a webhook notification refers to. At
// most one record carries a given payment id (assigned once at payment
// creation), so the query is limited to a single item.
func (r *AnalysisRecordDynamoRepository) FindByPaymentID(ctx context.Context, paymentID int64) (entities.AnalysisRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(analysesPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberN{Value: strconv.FormatInt(paymentID, 10)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AnalysisRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.AnalysisRecord{}, nil
	}

	var it analysisRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AnalysisRecord{}, err
	}
	return fromAnalysisRecordItem(it), nil
}

func fromAnalysisRecordItem(it analysisRecordItem) entities.AnalysisRecord {
	return entities.AnalysisRecord{
		ID:                it.ID,
		PaymentStatus:     it.PaymentStatus,
		PaymentDetail:     it.PaymentDetail,
		PaymentID:         it.PaymentID,
		PaymentMethod:     it.PaymentMethod,
		IsPremiumAnalysis: it.IsPremiumAnalysis,
	}
}
