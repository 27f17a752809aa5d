package awsutils

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// TokenizeParameters parses a `key=value;key=value` list into a map.
// When validKeys is not empty every key must be one of them.
func TokenizeParameters(params string, validKeys []string) (map[string]string, error) {
	tokens := map[string]string{}

	if params != "" {
		for _, attr := range strings.Split(params, ";") {
			if attr != "" {
				kv := strings.SplitN(attr, "=", 2)
				if len(kv) != 2 {
					err := fmt.Errorf(
						"Could not parse parameter. Expected format `key=value`, found %s",
						attr,
					)
					return map[string]string{}, err
				}

				key, value := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
				if key == "" || value == "" {
					err := fmt.Errorf("Could not parse parameter. Found empty key or value: %s", attr)
					return map[string]string{}, err
				} else if len(validKeys) > 0 && !slices.Contains(validKeys, key) {
					err := fmt.Errorf("Could not parse parameters. Found unrecognized key `%s`", key)
					return map[string]string{}, err
				}

				tokens[key] = value
			}
		}
	}

	return tokens, nil
}

// S3Location is a bucket and key prefix parsed from an s3:// URI
type S3Location struct {
	Bucket string
	Prefix string
}

func (l S3Location) String() string {
	return fmt.Sprintf("s3://%s/%s", l.Bucket, l.Prefix)
}

// Key joins the location prefix with name
func (l S3Location) Key(name string) string {
	if l.Prefix == "" {
		return name
	}
	return strings.TrimSuffix(l.Prefix, "/") + "/" + name
}

// ParseS3Uri splits an s3://bucket/prefix URI. The prefix may be empty.
func ParseS3Uri(uri string) (S3Location, error) {
	if !strings.HasPrefix(uri, "s3://") {
		return S3Location{}, fmt.Errorf("invalid S3 URI %q: must start with s3://", uri)
	}
	rest := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" {
		return S3Location{}, fmt.Errorf("invalid S3 URI %q: missing bucket name", uri)
	}
	loc := S3Location{Bucket: parts[0]}
	if len(parts) == 2 {
		loc.Prefix = parts[1]
	}
	return loc, nil
}

// S3Uri formats a bucket and directory as an s3:// URI with a trailing slash
func S3Uri(bucket string, directory string) string {
	directory = strings.Trim(directory, "/")
	if directory == "" {
		return fmt.Sprintf("s3://%s/", bucket)
	}
	return fmt.Sprintf("s3://%s/%s/", bucket, directory)
}
