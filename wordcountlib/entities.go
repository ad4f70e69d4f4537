package wordcountlib

import (
	"github.com/jdkato/prose/v2"

	"goWordCount/freqtablelib"
)

// countEntities counts the named entities of text as "text :: label" keys
func countEntities(text string, table *freqtablelib.Table) error {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return err
	}
	for _, ent := range doc.Entities() {
		table.Add(ent.Text + " :: " + ent.Label)
	}

	return nil
}
