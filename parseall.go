package id3tag

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RawFrame is one undecoded frame payload: the frame identifier plus the
// frame data with its header already stripped by the tag layer.
type RawFrame struct {
	ID   FrameID
	Data []byte
}

// ParseAll decodes multiple raw frame payloads concurrently.
//
// Payloads are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input. If any payload fails
// to decode, ParseAll returns the first error and no frames.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	frames, err := id3tag.ParseAll(ctx, id3tag.V2_4, raw)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, fr := range frames {
//		title, _ := fr.Field(id3tag.FieldText).Text()
//		fmt.Printf("%s: %s\n", fr.ID(), title)
//	}
func ParseAll(ctx context.Context, version Version, raw []RawFrame) ([]*Frame, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Frame, len(raw))

	for i, rf := range raw {
		i, rf := i, rf
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fr, err := NewFrame(rf.ID)
			if err != nil {
				return err
			}
			if err := fr.Parse(rf.Data, version); err != nil {
				return fmt.Errorf("%s: %w", rf.ID, err)
			}

			results[i] = fr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
