package chat

import (
	"testing"

	"salesbot/catalog"

	"github.com/stretchr/testify/assert"
)

func newClassifier() *Classifier {
	return &Classifier{Catalog: catalog.Default()}
}

func TestClassifyExplicitPhrases(t *testing.T) {
	cl := newClassifier()

	cases := []struct {
		utterance string
		want      Intent
	}{
		{"show services", IntentServicesList},
		{"SHOW SERVICES", IntentServicesList},
		{"please list services for me", IntentServicesList},
		{"services", IntentServicesList},
		{"continue", IntentContinue},
		{"ok go ahead", IntentContinue},
		{"what's next", IntentContinue},
		{"suggest time", IntentSuggestTime},
		{"can you recommend a time", IntentSuggestTime},
		{"what's the best time", IntentSuggestTime},
		{"confirm time", IntentConfirmTime},
		{"yes that works", IntentConfirmTime},
		{"sounds good to me", IntentConfirmTime},
		{"change time", IntentChangeTime},
		{"i want to pick a different time", IntentChangeTime},
		{"give me a different slot", IntentChangeTime},
		{"confirm booking", IntentConfirmBooking},
		{"confirm and pay", IntentConfirmBooking},
		{"confirm & pay", IntentConfirmBooking},
		{"please confirm my booking", IntentConfirmBooking},
		{"confirm this booking now", IntentConfirmBooking},
		{"what is the weather like", IntentNone},
		{"", IntentNone},
	}

	for _, tc := range cases {
		got, _ := cl.Classify(tc.utterance)
		assert.Equal(t, tc.want, got, "utterance: %q", tc.utterance)
	}
}

func TestClassifyFuzzyServiceMention(t *testing.T) {
	cl := newClassifier()

	intent, id := cl.Classify("I'd like a car wash please")
	assert.Equal(t, IntentServiceMention, intent)
	assert.Equal(t, "CAR-WASH", id)

	intent, id = cl.Classify("do you do oil changes?")
	assert.Equal(t, IntentServiceMention, intent)
	assert.Equal(t, "OIL-CHG", id)

	// A single weak token is below the acceptance threshold.
	intent, _ = cl.Classify("my car is dirty")
	assert.NotEqual(t, IntentServiceMention, intent)
}

func TestClassifyTellMeMore(t *testing.T) {
	cl := newClassifier()

	// No service named: disambiguate with the service list.
	intent, _ := cl.Classify("tell me more")
	assert.Equal(t, IntentServicesList, intent)

	// A recognizable service name wins over the generic prompt.
	intent, id := cl.Classify("tell me more about the car wash")
	assert.Equal(t, IntentServiceMention, intent)
	assert.Equal(t, "CAR-WASH", id)
}

func TestClassifyIsDeterministic(t *testing.T) {
	cl := newClassifier()

	for i := 0; i < 3; i++ {
		intent, id := cl.Classify("full detailing for my sedan")
		assert.Equal(t, IntentServiceMention, intent)
		assert.Equal(t, "DETAIL", id)
	}
}
