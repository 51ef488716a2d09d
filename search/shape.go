package search

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Location is the public shape of a locations record.
type Location struct {
	ID    json.RawMessage `json:"id"`
	Name  json.RawMessage `json:"name"`
	Image json.RawMessage `json:"image"`
	Link  json.RawMessage `json:"link"`
}

// Person is the public shape of a directory record.
type Person struct {
	ID         json.RawMessage `json:"id"`
	FirstName  json.RawMessage `json:"firstName"`
	LastName   json.RawMessage `json:"lastName"`
	Department json.RawMessage `json:"department"`
}

// Attribute values are kept as raw json so that whatever the api sent,
// including null, is written back out untouched. A nil json.RawMessage
// marshals as null.
type locationRecord struct {
	ID         json.RawMessage `json:"id"`
	Attributes struct {
		Name       json.RawMessage   `json:"name"`
		Thumbnails []json.RawMessage `json:"thumbnails"`
		Website    json.RawMessage   `json:"website"`
	} `json:"attributes"`
}

type personRecord struct {
	ID         json.RawMessage `json:"id"`
	Attributes struct {
		FirstName  json.RawMessage `json:"firstName"`
		LastName   json.RawMessage `json:"lastName"`
		Department json.RawMessage `json:"department"`
	} `json:"attributes"`
}

// Shape maps every record to the public shape for resource. The output has
// the same length and order as records. Records of an Unknown resource are
// returned unchanged.
func Shape(resource Resource, records []json.RawMessage) ([]interface{}, error) {
	shaped := make([]interface{}, 0, len(records))

	for i, record := range records {
		v, err := shapeRecord(resource, record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed shaping %s record %d", resource, i)
		}

		shaped = append(shaped, v)
	}

	return shaped, nil
}

func shapeRecord(resource Resource, record json.RawMessage) (interface{}, error) {
	switch resource {
	case Locations:
		return shapeLocation(record)
	case Directory:
		return shapePerson(record)
	default:
		return record, nil
	}
}

func shapeLocation(record json.RawMessage) (*Location, error) {
	r := new(locationRecord)
	if err := json.Unmarshal(record, r); err != nil {
		return nil, err
	}

	location := &Location{
		ID:   r.ID,
		Name: r.Attributes.Name,
		Link: r.Attributes.Website,
	}

	if len(r.Attributes.Thumbnails) > 0 {
		location.Image = r.Attributes.Thumbnails[0]
	}

	return location, nil
}

func shapePerson(record json.RawMessage) (*Person, error) {
	r := new(personRecord)
	if err := json.Unmarshal(record, r); err != nil {
		return nil, err
	}

	return &Person{
		ID:         r.ID,
		FirstName:  r.Attributes.FirstName,
		LastName:   r.Attributes.LastName,
		Department: r.Attributes.Department,
	}, nil
}
