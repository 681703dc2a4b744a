package encoding

import (
	"bytes"
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Peek reads only the fixed header from r and returns the raw bytes
// consumed alongside the decoded header. On an unrecognized or reserved
// control type Peek does not read the body: the returned
// *VariablePacketError has a nil Body, the body bytes are left unread in r,
// and the wrapped *FixedHeaderError carries their RemainingLength. Decode,
// by contrast, drains the body and returns it in the error.
func Peek(ctx context.Context, r io.Reader) (FixedHeader, []byte, error) {
	var header FixedHeader
	var raw []byte

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		buf := &bytes.Buffer{}
		tee := io.TeeReader(r, buf)
		fh, err := DecodeFixedHeader(tee)
		raw = buf.Bytes()
		if err != nil {
			var fhErr *FixedHeaderError
			if errors.As(err, &fhErr) {
				switch fhErr.Kind {
				case FixedHeaderReserved:
					return &VariablePacketError{Kind: VariablePacketErrReserved, Code: fhErr.Code, Body: nil, Err: fhErr}
				default:
					return &VariablePacketError{Kind: VariablePacketErrUnrecognized, Code: fhErr.Code, Body: nil, Err: fhErr}
				}
			}
			return err
		}
		header = fh
		return nil
	})

	if err := g.Wait(); err != nil {
		return FixedHeader{}, nil, err
	}
	select {
	case <-ctx.Done():
		return FixedHeader{}, nil, ctx.Err()
	default:
	}
	return header, raw, nil
}

// PeekFinalize peeks the fixed header, then reads exactly remaining_length
// more bytes and decodes them into a typed VariablePacket, returning the
// full raw packet bytes (header + body) alongside the decoded packet.
func PeekFinalize(ctx context.Context, r io.Reader) ([]byte, VariablePacket, error) {
	header, headerBytes, err := Peek(ctx, r)
	if err != nil {
		return nil, VariablePacket{}, err
	}

	var body []byte
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		buf := make([]byte, header.RemainingLength)
		if _, err := io.ReadFull(r, buf); err != nil {
			if errors.Is(err, io.EOF) {
				return io.ErrUnexpectedEOF
			}
			return err
		}
		body = buf
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, VariablePacket{}, err
	}
	select {
	case <-ctx.Done():
		return nil, VariablePacket{}, ctx.Err()
	default:
	}

	vp, err := decodeVariant(header.Type, bytes.NewReader(body), header)
	if err != nil {
		return nil, VariablePacket{}, &VariablePacketError{Kind: VariablePacketErrPacket, Code: byte(header.Type), Err: err}
	}

	full := make([]byte, 0, len(headerBytes)+len(body))
	full = append(full, headerBytes...)
	full = append(full, body...)
	return full, vp, nil
}

// Parse peeks the fixed header, reads exactly remaining_length more bytes,
// and decodes them; the raw bytes are discarded.
func Parse(ctx context.Context, r io.Reader) (VariablePacket, error) {
	_, vp, err := PeekFinalize(ctx, r)
	return vp, err
}

