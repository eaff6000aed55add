package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/breezykermo/qdrant-example-app/vectordb"
)

// tenantFilter builds the mandatory per-tenant predicate applied to
// every query branch: payload.user_id == tenantID.
func tenantFilter(tenantID int64) *qdrant.Filter {
	return &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatchInt(vectordb.PayloadTenant, tenantID),
		},
	}
}

// toPointStruct converts a vectordb.Point into Qdrant's PointStruct,
// placing the embedding triple under its three named vector slots.
func toPointStruct(p vectordb.Point) *qdrant.PointStruct {
	return &qdrant.PointStruct{
		Id: qdrant.NewIDNum(p.ID),
		Vectors: qdrant.NewVectorsMap(map[string]*qdrant.Vector{
			vectordb.SlotDense:           qdrant.NewVectorDense(p.Dense),
			vectordb.SlotSparse:          qdrant.NewVectorSparse(p.Sparse.Indices, p.Sparse.Values),
			vectordb.SlotLateInteraction: qdrant.NewVectorMulti(p.LateInteraction),
		}),
		Payload: qdrant.NewValueMap(p.Payload),
	}
}

// parseScoredPoints converts a Qdrant response to vectordb.ScoredPoint
// values. Point identifiers are numeric in this system; a UUID identifier
// indicates the collection was populated by something else.
func parseScoredPoints(resp []*qdrant.ScoredPoint) ([]vectordb.ScoredPoint, error) {
	results := make([]vectordb.ScoredPoint, 0, len(resp))
	for _, r := range resp {
		id, err := extractPointID(r.Id)
		if err != nil {
			return nil, err
		}

		results = append(results, vectordb.ScoredPoint{
			ID:      id,
			Score:   r.Score,
			Payload: convertPayload(r.Payload),
		})
	}
	return results, nil
}

// extractPointID extracts a numeric ID from Qdrant's PointId type.
func extractPointID(id *qdrant.PointId) (uint64, error) {
	if id == nil {
		return 0, fmt.Errorf("[Qdrant] nil point ID")
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return v.Num, nil
	default:
		return 0, fmt.Errorf("[Qdrant] unexpected PointId type: %T", v)
	}
}

// convertPayload converts Qdrant's protobuf payload to a generic map.
func convertPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}
