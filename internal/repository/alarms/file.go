package alarms

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	api "github.com/oshokin/alarm-clock/internal/api/grpc/alarm"
	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/domain/alarm"
)

// Repository defines persistence operations for alarm records.
type Repository interface {
	Load(ctx context.Context) ([]alarm.Record, error)
	Save(ctx context.Context, records []alarm.Record) error
}

// FileRepository persists alarm records to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) so the file
// holds exactly what travels over the wire.
type FileRepository struct {
	// path is the filesystem location of the JSON file.
	path string
	// mu protects concurrent access to the file.
	mu sync.Mutex
}

// ErrNotFound is returned when the alarms file does not exist yet.
var ErrNotFound = errors.New("alarms not found")

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the records from disk.
func (r *FileRepository) Load(_ context.Context) ([]alarm.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read alarms file: %w", err)
	}

	var list structpb.ListValue
	if err = protojson.Unmarshal(contents, &list); err != nil {
		return nil, fmt.Errorf("decode alarms file: %w", err)
	}

	return api.FromProtoRecords(&list), nil
}

// Save writes the records to disk, replacing the previous contents.
func (r *FileRepository) Save(_ context.Context, records []alarm.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := api.ToProtoRecords(records)
	if err != nil {
		return err
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline: true,
		Indent:    "  ",
	}

	data, err := marshalOptions.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode alarms: %w", err)
	}

	// Write next to the target, then rename over it.
	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write alarms file: %w", err)
	}

	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace alarms file: %w", err)
	}

	return nil
}
