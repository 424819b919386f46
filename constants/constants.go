package constants

import "os"

func GetExportDir() string {
	path := os.Getenv("EXPORT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const ProgressionTable = "voiceleader-progressions"

// Octave band the optimizer steers voicings toward. Octaves 2-5 are
// playable but scoring pulls everything toward 3-4.
const (
	DefaultOctave  = 3
	OctaveBandLow  = 3
	OctaveBandHigh = 4
)

// A close voicing spans at most an octave plus a fifth.
const MaxCloseVoicingSpan = 19
