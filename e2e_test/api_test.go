//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/voiceleader/cmd"
	"github.com/jsphweid/voiceleader/model"
	"github.com/stretchr/testify/assert"
)

func createOptimizeReqBody(chords [][]string) io.Reader {
	or := model.OptimizeRequestBody{Chords: chords}
	data, err := json.Marshal(or)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestScaleE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scale?key=F%23&mode=major", nil)
	w := httptest.NewRecorder()
	cmd.HandleScale(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var scaleResponse model.ScaleResponse
	err := json.Unmarshal(respBody, &scaleResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(scaleResponse, model.ScaleResponse{
		Key:   "F#",
		Mode:  "major",
		Notes: []string{"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	})
}

func TestScaleUnknownModeE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/scale?key=C&mode=locrian", nil)
	w := httptest.NewRecorder()
	cmd.HandleScale(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestKeySignatureE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/key-signature?key=A&mode=minor", nil)
	w := httptest.NewRecorder()
	cmd.HandleKeySignature(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var sig struct {
		SharpCount    int    `json:"sharp_count"`
		FlatCount     int    `json:"flat_count"`
		RelativeMajor string `json:"relative_major"`
	}
	err := json.Unmarshal(respBody, &sig)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(sig.SharpCount, 0)
	assert.Equal(sig.FlatCount, 0)
	assert.Equal(sig.RelativeMajor, "C")
}

func TestChordByNumeralE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chord?numeral=V7&key=C&mode=major", nil)
	w := httptest.NewRecorder()
	cmd.HandleChord(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var chordResponse model.ChordResponse
	err := json.Unmarshal(respBody, &chordResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal(chordResponse, model.ChordResponse{
		Root:    "G",
		Quality: "dominant7",
		Notes:   []string{"G", "B", "D", "F"},
	})
}

func TestOptimizeE2E(t *testing.T) {
	body := createOptimizeReqBody([][]string{
		{"C", "E", "G"},
		{"F", "A", "C"},
		{"G", "B", "D"},
		{"C", "E", "G"},
	})
	req := httptest.NewRequest(http.MethodPost, "/optimize", body)
	w := httptest.NewRecorder()
	cmd.HandleOptimize(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var optimizeResponse model.OptimizeResponse
	err := json.Unmarshal(respBody, &optimizeResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Len(optimizeResponse.Voicings, 4)
	for _, v := range optimizeResponse.Voicings {
		assert.Len(v, 3)
	}

	// first and last chord are both C major and resolve consistently
	first := optimizeResponse.Voicings[0]
	assert.Equal(first[0].Note, "C")
	assert.Equal(first[0].Octave, 3)
}

func TestOptimizeBadBodyE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/optimize", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	cmd.HandleOptimize(w, req)

	assert.Equal(t, w.Result().StatusCode, 400)
}

func TestRouterE2E(t *testing.T) {
	router := cmd.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/related-keys?key=C&mode=major", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var related struct {
		Dominant struct {
			Key string `json:"key"`
		} `json:"dominant"`
		Relative struct {
			Key  string `json:"key"`
			Mode string `json:"mode"`
		} `json:"relative"`
	}
	err := json.Unmarshal(respBody, &related)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal(related.Dominant.Key, "G")
	assert.Equal(related.Relative.Key, "A")
	assert.Equal(related.Relative.Mode, "minor")
}
