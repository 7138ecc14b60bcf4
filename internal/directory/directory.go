package directory

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownField is returned when an operation names a field that does
// not exist on Record.
var ErrUnknownField = errors.New("field does not exist")

// ErrIndexOutOfRange is returned when an edit targets an index outside
// the current record list.
var ErrIndexOutOfRange = errors.New("invalid index")

// Store persists the record list. Implementations live in
// internal/store.
type Store interface {
	Load() ([]Record, error)
	Save([]Record) error
	Close() error
}

// Directory holds the loaded record list and persists every mutation
// through its Store.
type Directory struct {
	store   Store
	log     *zap.Logger
	records []Record
}

// New loads the record list from store. A store that cannot produce a
// usable list reports the problem itself and yields an empty directory,
// so New only fails on hard store errors.
func New(store Store, log *zap.Logger) (*Directory, error) {
	if log == nil {
		log = zap.NewNop()
	}
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return &Directory{store: store, log: log, records: records}, nil
}

// List returns the current record list in stored order.
func (d *Directory) List() []Record {
	return d.records
}

// Len returns the number of records.
func (d *Directory) Len() int {
	return len(d.records)
}

// Add validates the record, appends it and persists the list.
func (d *Directory) Add(r Record) error {
	if err := r.Validate(); err != nil {
		d.log.Error("rejected record", zap.Error(err))
		return err
	}
	d.records = append(d.records, r)
	if err := d.store.Save(d.records); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	d.log.Info("record added",
		zap.String("last_name", r.LastName),
		zap.Int("records", len(d.records)))
	return nil
}

// Edit replaces one field of the record at index (0-based) and persists
// the list. The new value is validated against the field's rules.
func (d *Directory) Edit(index int, field, value string) error {
	if index < 0 || index >= len(d.records) {
		d.log.Error("edit index out of range", zap.Int("index", index))
		return ErrIndexOutOfRange
	}
	if err := ValidateField(field, value); err != nil {
		d.log.Error("rejected edit", zap.Int("index", index), zap.Error(err))
		return err
	}
	d.records[index].SetField(field, value)
	if err := d.store.Save(d.records); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	d.log.Info("record edited", zap.Int("index", index), zap.String("field", field))
	return nil
}

// Search returns the records matching query. A query of the form
// "field=value" matches records whose named field equals value, ignoring
// case; an unknown field name is an error. Any other query matches
// records where any field contains the query, ignoring case.
func (d *Directory) Search(query string) ([]Record, error) {
	if field, value, ok := strings.Cut(query, "="); ok {
		return d.searchField(field, value)
	}

	var results []Record
	needle := strings.ToLower(query)
	for _, r := range d.records {
		for _, name := range FieldNames {
			v, _ := r.Field(name)
			if strings.Contains(strings.ToLower(v), needle) {
				results = append(results, r)
				break
			}
		}
	}
	return results, nil
}

func (d *Directory) searchField(field, value string) ([]Record, error) {
	if _, ok := (Record{}).Field(field); !ok {
		d.log.Error("search on unknown field", zap.String("field", field))
		return nil, fmt.Errorf("field %q: %w", field, ErrUnknownField)
	}
	var results []Record
	for _, r := range d.records {
		v, _ := r.Field(field)
		if strings.EqualFold(v, value) {
			results = append(results, r)
		}
	}
	return results, nil
}

// Paginate slices records into the given 1-based page. totalPages is the
// ceiling of len(records)/perPage; a page past the end yields an empty
// slice.
func Paginate(records []Record, perPage, page int) (pageRecords []Record, totalPages int) {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages = (len(records) + perPage - 1) / perPage

	start := (page - 1) * perPage
	if start >= len(records) {
		return nil, totalPages
	}
	end := start + perPage
	if end > len(records) {
		end = len(records)
	}
	return records[start:end], totalPages
}
