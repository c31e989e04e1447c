package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const recordNamespace = "go-portal:record:"

// RecordUUID maps an external record identifier onto the UUID key space used by SQL
// stores. The result is scoped by domain and is case-sensitive in the identifier, so
// it is unique wherever the (domain, id) pair is unique. Identifiers that already
// look like UUIDs are hashed as well.
func RecordUUID(domainKey, id string) uuid.UUID {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return uuid.Nil
	}
	return derive(recordNamespace + strings.ToLower(strings.TrimSpace(domainKey)) + ":" + trimmed)
}

// derive hashes key through go-hashid without normalisation. hashid case-folds by
// default, which would merge identifiers that differ only in case.
func derive(key string) uuid.UUID {
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(false))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid
}
