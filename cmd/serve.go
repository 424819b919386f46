package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/voiceleader/chord"
	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/scale"
	"github.com/jsphweid/voiceleader/voicelead"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the theory and voicing API",
	Long:  `Serves the theory and voicing API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	mode := scale.Mode(r.URL.Query().Get("mode"))
	notes, err := scale.Notes(key, mode)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.ScaleResponse{
		Key:   key,
		Mode:  string(scale.Normalize(mode)),
		Notes: notes,
	})
}

func HandleKeySignature(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	mode := scale.Mode(r.URL.Query().Get("mode"))
	sig, ok := scale.KeySignature(key, mode)
	if !ok {
		writeError(w, 404, fmt.Sprintf("unknown key: %v %v", key, mode))
		return
	}
	json.NewEncoder(w).Encode(sig)
}

func HandleRelatedKeys(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	mode := scale.Mode(r.URL.Query().Get("mode"))
	related, ok := scale.RelatedKeys(key, mode)
	if !ok {
		writeError(w, 404, fmt.Sprintf("unknown key: %v %v", key, mode))
		return
	}
	json.NewEncoder(w).Encode(related)
}

// HandleChord expands either a roman numeral in a key or a root+quality
// pair into chord tones.
func HandleChord(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	root := query.Get("root")
	quality := chord.Quality(query.Get("quality"))
	if numeral := query.Get("numeral"); numeral != "" {
		key := query.Get("key")
		mode := scale.Mode(query.Get("mode"))
		resolved, err := chord.RomanRoot(numeral, key, mode)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		root = resolved
		quality = chord.DegreeQuality(numeral, mode)
	}

	notes, err := chord.Notes(root, quality)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.ChordResponse{
		Root:    root,
		Quality: string(quality),
		Notes:   notes,
	})
}

func HandleOptimize(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.OptimizeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}

	voicings := make([]model.Voicing, 0, len(input.Chords))
	previous := input.Previous
	for _, notes := range input.Chords {
		v := voicelead.Optimize(notes, previous, input.TargetOctave)
		voicings = append(voicings, v)
		previous = v
	}
	json.NewEncoder(w).Encode(model.OptimizeResponse{Voicings: voicings})
}

// NewRouter wires up the API surface. Exported so the e2e tests can hit
// it without a listening socket.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scale", HandleScale).Methods("GET")
	router.HandleFunc("/key-signature", HandleKeySignature).Methods("GET")
	router.HandleFunc("/related-keys", HandleRelatedKeys).Methods("GET")
	router.HandleFunc("/chord", HandleChord).Methods("GET")
	router.HandleFunc("/optimize", HandleOptimize).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	log.Fatal(http.ListenAndServe(":8080", NewRouter()))
}
