package afm

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/afmkit/internal/union"
)

// Discriminator keys of the qualifier unions.
const (
	KeyURI             = "uri"
	KeyIdentifier      = "identifier"
	KeyLocalIdentifier = "localIdentifier"
)

// Qualifier references either a backend object or a local attribute/measure.
//
// Implemented by URIQualifier, IdentifierQualifier and LocalIdentifierQualifier.
type Qualifier interface {
	qualifier()
}

// ObjQualifier references a backend object by URI or by identifier.
// The two forms are equivalent; exactly one is present.
type ObjQualifier interface {
	Qualifier
	objQualifier()
}

// URIQualifier references a backend object by URI.
type URIQualifier struct {
	URI string `json:"uri"`
}

func (URIQualifier) qualifier()    {}
func (URIQualifier) objQualifier() {}

// IdentifierQualifier references a backend object by its stable identifier.
type IdentifierQualifier struct {
	Identifier string `json:"identifier"`
}

func (IdentifierQualifier) qualifier()    {}
func (IdentifierQualifier) objQualifier() {}

// LocalIdentifierQualifier references an attribute or measure of the same AFM.
type LocalIdentifierQualifier struct {
	LocalIdentifier string `json:"localIdentifier"`
}

func (LocalIdentifierQualifier) qualifier() {}

// URI returns a qualifier referencing an object by URI.
func URI(uri string) URIQualifier {
	return URIQualifier{URI: uri}
}

// Identifier returns a qualifier referencing an object by identifier.
func Identifier(identifier string) IdentifierQualifier {
	return IdentifierQualifier{Identifier: identifier}
}

// LocalIdentifier returns a qualifier referencing a local attribute or measure.
func LocalIdentifier(localIdentifier string) LocalIdentifierQualifier {
	return LocalIdentifierQualifier{LocalIdentifier: localIdentifier}
}

// IsObjectURIQualifier reports whether q references an object by URI.
func IsObjectURIQualifier(q Qualifier) bool {
	return union.Is[URIQualifier](q)
}

// IsObjIdentifierQualifier reports whether q references an object by identifier.
func IsObjIdentifierQualifier(q Qualifier) bool {
	return union.Is[IdentifierQualifier](q)
}

// IsLocalIdentifierQualifier reports whether q references a local attribute or measure.
func IsLocalIdentifierQualifier(q Qualifier) bool {
	return union.Is[LocalIdentifierQualifier](q)
}

// UnmarshalObjQualifier decodes {"uri": ...} or {"identifier": ...}.
func UnmarshalObjQualifier(data []byte) (ObjQualifier, error) {
	key, obj, err := union.Discriminate("objQualifier", data, KeyURI, KeyIdentifier)
	if err != nil {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(obj[key], &s); err != nil {
		return nil, fmt.Errorf("objQualifier.%s: %w", key, err)
	}
	if key == KeyURI {
		return URIQualifier{URI: s}, nil
	}
	return IdentifierQualifier{Identifier: s}, nil
}

// UnmarshalQualifier decodes an object qualifier or {"localIdentifier": ...}.
func UnmarshalQualifier(data []byte) (Qualifier, error) {
	key, obj, err := union.Discriminate("qualifier", data, KeyURI, KeyIdentifier, KeyLocalIdentifier)
	if err != nil {
		return nil, err
	}

	var s string
	if err := json.Unmarshal(obj[key], &s); err != nil {
		return nil, fmt.Errorf("qualifier.%s: %w", key, err)
	}
	switch key {
	case KeyURI:
		return URIQualifier{URI: s}, nil
	case KeyIdentifier:
		return IdentifierQualifier{Identifier: s}, nil
	default:
		return LocalIdentifierQualifier{LocalIdentifier: s}, nil
	}
}

// optionalObjQualifier decodes raw, leaving the qualifier nil when the field is absent.
func optionalObjQualifier(field string, raw json.RawMessage) (ObjQualifier, error) {
	if union.Absent(raw) {
		return nil, nil
	}
	q, err := UnmarshalObjQualifier(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return q, nil
}
