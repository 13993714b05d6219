package alarm

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// ToProtoRecord converts an alarm record into a protobuf Struct.
// Integer slices are widened to lists, which structpb does not do on its own.
func ToProtoRecord(record domain.Record) (*structpb.Struct, error) {
	fields := make(map[string]any, len(record))
	for key, value := range record {
		fields[key] = toProtoCompatible(value)
	}

	result, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}

	return result, nil
}

// FromProtoRecord converts a protobuf Struct back into an alarm record.
// Numbers come back as float64; the alarm constructor coerces them.
func FromProtoRecord(msg *structpb.Struct) domain.Record {
	if msg == nil {
		return nil
	}

	return domain.Record(msg.AsMap())
}

// ToProtoRecords converts records into a protobuf list of structs.
func ToProtoRecords(records []domain.Record) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(records))

	for _, record := range records {
		msg, err := ToProtoRecord(record)
		if err != nil {
			return nil, err
		}

		values = append(values, structpb.NewStructValue(msg))
	}

	return &structpb.ListValue{Values: values}, nil
}

// FromProtoRecords converts a protobuf list back into records.
// Entries that are not structs are skipped.
func FromProtoRecords(msg *structpb.ListValue) []domain.Record {
	result := make([]domain.Record, 0, len(msg.GetValues()))

	for _, value := range msg.GetValues() {
		if record := value.GetStructValue(); record != nil {
			result = append(result, FromProtoRecord(record))
		}
	}

	return result
}

// ToProtoState wraps an opaque service state into a protobuf Value.
func ToProtoState(state any) (*structpb.Value, error) {
	result, err := structpb.NewValue(toProtoCompatible(state))
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}

	return result, nil
}

// FromProtoState unwraps an opaque service state.
func FromProtoState(msg *structpb.Value) any {
	if msg == nil {
		return nil
	}

	return msg.AsInterface()
}

// toProtoCompatible rewrites the Go shapes used by alarm records into the
// shapes structpb accepts.
func toProtoCompatible(value any) any {
	switch v := value.(type) {
	case []int:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = item
		}

		return list
	case []string:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = item
		}

		return list
	case domain.Record:
		return toProtoCompatibleMap(v)
	case map[string]any:
		return toProtoCompatibleMap(v)
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = toProtoCompatible(item)
		}

		return list
	default:
		return value
	}
}

func toProtoCompatibleMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for key, item := range m {
		result[key] = toProtoCompatible(item)
	}

	return result
}
