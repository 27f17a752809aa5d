package awsutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeParameters(t *testing.T) {
	attributes, err := TokenizeParameters("LoggingAccountName=log;SecurityAccountName=sec", []string{"LoggingAccountName", "SecurityAccountName"})

	expected := map[string]string{"LoggingAccountName": "log", "SecurityAccountName": "sec"}
	assert.Nil(t, err)
	assert.Equal(t, expected, attributes)
}

func TestTokenizeParametersShouldEliminateEmpty(t *testing.T) {
	attributes, err := TokenizeParameters(";a=1;b=2;;", nil)

	expected := map[string]string{"a": "1", "b": "2"}
	assert.Nil(t, err)
	assert.Equal(t, expected, attributes)
}

func TestTokenizeParametersShouldTrimSpaces(t *testing.T) {
	attributes, err := TokenizeParameters(";a  =   test;b = test value;;", nil)

	expected := map[string]string{"a": "test", "b": "test value"}
	assert.Nil(t, err)
	assert.Equal(t, expected, attributes)
}

func TestTokenizeParametersKeepsEqualsInValue(t *testing.T) {
	attributes, err := TokenizeParameters("email=a+b=c@example.com", nil)

	assert.Nil(t, err)
	assert.Equal(t, "a+b=c@example.com", attributes["email"])
}

func TestTokenizeParametersShouldRefuseInvalidKeys(t *testing.T) {
	_, err := TokenizeParameters("a=1;c=2", []string{"a", "b"})

	assert.NotNil(t, err)
}

func TestParseS3Uri(t *testing.T) {
	loc, err := ParseS3Uri("s3://idc-open-data/00029d25-fb18-4d42-aaa5-a0897d1ac8f7/")

	assert.Nil(t, err)
	assert.Equal(t, "idc-open-data", loc.Bucket)
	assert.Equal(t, "00029d25-fb18-4d42-aaa5-a0897d1ac8f7/", loc.Prefix)
	assert.Equal(t, "00029d25-fb18-4d42-aaa5-a0897d1ac8f7/job-output-manifest.json", loc.Key("job-output-manifest.json"))
}

func TestParseS3UriBucketOnly(t *testing.T) {
	loc, err := ParseS3Uri("s3://bucket")

	assert.Nil(t, err)
	assert.Equal(t, "bucket", loc.Bucket)
	assert.Equal(t, "", loc.Prefix)
	assert.Equal(t, "file", loc.Key("file"))
}

func TestParseS3UriRejectsInvalid(t *testing.T) {
	_, err := ParseS3Uri("https://bucket/key")
	assert.NotNil(t, err)

	_, err = ParseS3Uri("s3:///key")
	assert.NotNil(t, err)
}

func TestS3Uri(t *testing.T) {
	assert.Equal(t, "s3://bucket/dir/", S3Uri("bucket", "/dir/"))
	assert.Equal(t, "s3://bucket/", S3Uri("bucket", ""))
}
