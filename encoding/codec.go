package encoding

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/axmq/mqtt311/pkg/logger"
)

// Parser wraps the package-level Decode/Encode functions with the optional
// ambient concerns a broker or client would bolt on around the bare codec:
// metrics and structured logging. Both fields are optional; the zero value
// Parser behaves exactly like calling Decode/EncodePacket directly.
type Parser struct {
	Metrics *Metrics
	Logger  *logger.SlogLogger
}

// Decode reads one packet from r, updating metrics and emitting a log line
// per the outcome (debug on success, warn on malformed/unrecognized).
func (p *Parser) Decode(r io.Reader) (VariablePacket, error) {
	vp, err := Decode(r)
	if err != nil {
		if p.Logger != nil {
			var vpErr *VariablePacketError
			if errors.As(err, &vpErr) {
				p.Logger.Warn("mqtt decode failed", "kind", vpErr.Kind, "code", vpErr.Code, "err", vpErr.Err)
			} else {
				p.Logger.Warn("mqtt decode failed", "err", err)
			}
		}
		return VariablePacket{}, err
	}

	fh := vp.Packet().FixedHeader()
	p.Metrics.observeDecode(fh)
	if p.Logger != nil {
		p.Logger.WithPacketType(fh.Type.String()).Debug("mqtt packet decoded", "remaining_length", fh.RemainingLength)
	}
	return vp, nil
}

// Encode writes vp to w, updating metrics.
func (p *Parser) Encode(w io.Writer, vp VariablePacket) error {
	if err := vp.Encode(w); err != nil {
		if p.Logger != nil {
			p.Logger.Warn("mqtt encode failed", "type", vp.Type.String(), "err", err)
		}
		return err
	}
	p.Metrics.observeEncode(vp.Packet().FixedHeader())
	return nil
}
