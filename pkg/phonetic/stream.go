package phonetic

import (
	"context"
	"unicode"

	"github.com/benoit-pereira-da-silva/textual/pkg/textual"
)

// Stream applies an Encoder to the words of incoming textual Parcels.
//
// It implements textual.Processor so that it can be used directly in
// textual.Chain, Router, IOReaderProcessor, Transformation, etc. Each
// word of the parcel text yields one Fragment whose Transformed field
// carries the phonetic code.
type Stream[S textual.Result] struct {
	encoder Encoder
}

// NewStream constructs a Stream processor around the given encoder.
func NewStream[S textual.Result](encoder Encoder) *Stream[S] {
	return &Stream[S]{encoder: encoder}
}

// Apply implements the textual.Processor interface.
func (p *Stream[S]) Apply(ctx context.Context, in <-chan textual.Result) <-chan textual.Result {
	if ctx == nil {
		ctx = context.Background()
	}

	out := make(chan textual.Result)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				// Stop emitting results but drain upstream to avoid
				// blocking senders.
				for range in {
				}
				return
			case res, ok := <-in:
				if !ok {
					// Upstream closed: no more input.
					return
				}

				processed := p.processResult(res)

				select {
				case <-ctx.Done():
					// Context canceled while sending.
					return
				case out <- processed:
				}
			}
		}
	}()

	return out
}

// processResult replaces the parcel fragments with one fragment per
// word, carrying the word's phonetic code. The original text is
// preserved.
func (p *Stream[S]) processResult(res textual.Result) textual.Result {
	out := res
	text := string(res.Text)
	if text == "" {
		out.Fragments = nil
		return out
	}

	runes := []rune(text)
	var fragments []textual.Fragment

	inWord := false
	wordStart := 0
	flush := func(end int) {
		word := string(runes[wordStart:end])
		fragments = append(fragments, textual.Fragment{
			Pos:         wordStart,
			Len:         end - wordStart,
			Transformed: textual.UTF8String(p.encoder.Encode(word)),
		})
	}

	for i, r := range runes {
		if unicode.IsLetter(r) {
			if !inWord {
				inWord = true
				wordStart = i
			}
			continue
		}
		if inWord {
			flush(i)
			inWord = false
		}
	}
	if inWord {
		flush(len(runes))
	}

	out.Fragments = fragments
	return out
}
