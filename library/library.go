package library

import (
	"fmt"
	"log"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/voiceleader/chord"
	"github.com/jsphweid/voiceleader/constants"
	"github.com/jsphweid/voiceleader/model"
	"github.com/jsphweid/voiceleader/scale"
	"github.com/jsphweid/voiceleader/util"
)

// Built-in progressions, always available without a backing store.
var presets = map[string]model.Progression{
	"ii-V-I": {
		Name: "ii-V-I", Key: "C", Mode: "major",
		Numerals: []string{"ii7", "V7", "I"},
	},
	"I-IV-V-I": {
		Name: "I-IV-V-I", Key: "C", Mode: "major",
		Numerals: []string{"I", "IV", "V", "I"},
	},
	"I-V-vi-IV": {
		Name: "I-V-vi-IV", Key: "C", Mode: "major",
		Numerals: []string{"I", "V", "vi", "IV"},
	},
	"i-iv-V-i": {
		Name: "i-iv-V-i", Key: "A", Mode: "harmonic-minor",
		Numerals: []string{"i", "iv", "V", "i"},
	},
}

func PresetNames() []string {
	names := util.GetKeys(presets)
	sort.Strings(names)
	return names
}

// GetProgression looks a progression up by name, preferring the built-in
// presets and falling back to the DynamoDB table.
func GetProgression(name string) (model.Progression, bool) {
	if p, ok := presets[name]; ok {
		return p, true
	}
	return fetchRemote(name)
}

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

func fetchRemote(name string) (model.Progression, bool) {
	client := newClient()
	out, err := client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(constants.ProgressionTable),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
	})
	if err != nil {
		log.Printf("Could not fetch progression %v: %v", name, err)
		return model.Progression{}, false
	}
	if out.Item == nil {
		return model.Progression{}, false
	}

	p := model.Progression{Name: name}
	if v, ok := out.Item["Key"]; ok && v.S != nil {
		p.Key = *v.S
	}
	if v, ok := out.Item["Mode"]; ok && v.S != nil {
		p.Mode = *v.S
	}
	if v, ok := out.Item["Numerals"]; ok {
		for _, av := range v.L {
			if av.S != nil {
				p.Numerals = append(p.Numerals, *av.S)
			}
		}
	}
	return p, true
}

// SaveProgression stores a named progression in the DynamoDB table.
func SaveProgression(p model.Progression) error {
	var numerals []*dynamodb.AttributeValue
	for _, numeral := range p.Numerals {
		numerals = append(numerals, &dynamodb.AttributeValue{S: aws.String(numeral)})
	}
	client := newClient()
	_, err := client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(constants.ProgressionTable),
		Item: map[string]*dynamodb.AttributeValue{
			"PK":       {S: aws.String(p.Name)},
			"Key":      {S: aws.String(p.Key)},
			"Mode":     {S: aws.String(p.Mode)},
			"Numerals": {L: numerals},
		},
	})
	if err != nil {
		return fmt.Errorf("could not save progression %v: %w", p.Name, err)
	}
	return nil
}

// Chords expands a progression's numerals into concrete note lists,
// ready for the optimizer.
func Chords(p model.Progression) ([][]string, error) {
	chords := make([][]string, 0, len(p.Numerals))
	for _, numeral := range p.Numerals {
		notes, err := chord.NotesForDegree(numeral, p.Key, scale.Mode(p.Mode))
		if err != nil {
			return nil, fmt.Errorf("bad numeral %q in progression %q: %w", numeral, p.Name, err)
		}
		chords = append(chords, notes)
	}
	return chords, nil
}
