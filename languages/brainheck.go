package languages

import "github.com/zjrosen/highlighter/highlight"

// Brainheck highlights the eight Brainheck commands; everything else is a comment.
type Brainheck struct{}

func (Brainheck) Name() string { return "brainheck" }

func (Brainheck) Names() []string { return []string{"brainheck", "bf"} }

func (Brainheck) Init(cx *highlight.LexerContext) error {
	if err := cx.RegisterPlain(highlight.KeywordOperator, `[+\-<>.,\[\]]+`); err != nil {
		return err
	}
	return cx.RegisterPlain(highlight.Comment, `[^+\-<>.,\[\]]+`)
}
