package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/Kronuz/base-x-go/internal/basex"
	"github.com/Kronuz/base-x-go/internal/biguint"
	apperrors "github.com/Kronuz/base-x-go/internal/errors"
	"github.com/Kronuz/base-x-go/internal/logging"
	"github.com/Kronuz/base-x-go/internal/sysmon"
)

const arithDigitBase = 10

// encodeRequest is the body of POST /v1/encode.
type encodeRequest struct {
	Alphabet string `json:"alphabet"`
	Input    string `json:"input"` // base64-encoded payload bytes
	Checksum bool   `json:"checksum"`
}

type encodeResponse struct {
	Encoded string `json:"encoded"`
}

// decodeRequest is the body of POST /v1/decode.
type decodeRequest struct {
	Alphabet string `json:"alphabet"`
	Input    string `json:"input"` // encoded text
	Checksum bool   `json:"checksum"`
}

type decodeResponse struct {
	Decoded string `json:"decoded"` // base64-encoded payload bytes
}

// arithRequest is the body of POST /v1/arith.
type arithRequest struct {
	Op   string `json:"op"` // add, sub, mul, div, mod, cmp
	A    string `json:"a"`
	B    string `json:"b"`
	Base int    `json:"base"`
}

type arithResponse struct {
	Result string `json:"result"`
	Carry  bool   `json:"carry,omitempty"`
}

func (s *Server) lookupCodec(name string) (*basex.Codec, error) {
	c, ok := basex.ByName(name)
	if !ok {
		return nil, apperrors.NewRequestError(http.StatusBadRequest, nil, "unknown alphabet %q", name)
	}
	return c, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write JSON response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	var reqErr apperrors.RequestError
	if ok := asRequestError(err, &reqErr); ok {
		status = reqErr.Status
		message = reqErr.Error()
	}
	s.logger.Error("request failed", err, logging.Int("status", status))
	s.writeJSON(w, status, map[string]string{"error": message})
}

func asRequestError(err error, target *apperrors.RequestError) bool {
	re, ok := err.(apperrors.RequestError)
	if ok {
		*target = re
	}
	return ok
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any, maxBytes int64) error {
	body := http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return apperrors.NewRequestError(http.StatusBadRequest, err, "invalid request body")
	}
	return nil
}

// handleEncode serves POST /v1/encode.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req encodeRequest
	if err := decodeJSONBody(w, r, &req, s.maxInputBytes); err != nil {
		s.writeError(w, err)
		return
	}

	c, err := s.lookupCodec(req.Alphabet)
	if err != nil {
		s.writeError(w, err)
		return
	}

	payload, err := base64.StdEncoding.DecodeString(req.Input)
	if err != nil {
		s.writeError(w, apperrors.NewRequestError(http.StatusBadRequest, err, "input must be base64-encoded"))
		return
	}

	s.writeJSON(w, http.StatusOK, encodeResponse{Encoded: c.EncodeBytes(payload, req.Checksum)})
}

// handleDecode serves POST /v1/decode.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req decodeRequest
	if err := decodeJSONBody(w, r, &req, s.maxInputBytes); err != nil {
		s.writeError(w, err)
		return
	}

	c, err := s.lookupCodec(req.Alphabet)
	if err != nil {
		s.writeError(w, err)
		return
	}

	payload, err := c.DecodeBytes(req.Input, req.Checksum)
	if err != nil {
		s.writeError(w, apperrors.NewRequestError(http.StatusBadRequest, err, "decode failed"))
		return
	}

	s.writeJSON(w, http.StatusOK, decodeResponse{Decoded: base64.StdEncoding.EncodeToString(payload)})
}

// handleArith serves POST /v1/arith.
func (s *Server) handleArith(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req arithRequest
	if err := decodeJSONBody(w, r, &req, s.maxInputBytes); err != nil {
		s.writeError(w, err)
		return
	}

	base := req.Base
	if base == 0 {
		base = arithDigitBase
	}

	a, err := biguint.ParseText(req.A, base)
	if err != nil {
		s.writeError(w, apperrors.NewRequestError(http.StatusBadRequest, err, "invalid operand a"))
		return
	}
	b := biguint.Zero
	if req.B != "" {
		b, err = biguint.ParseText(req.B, base)
		if err != nil {
			s.writeError(w, apperrors.NewRequestError(http.StatusBadRequest, err, "invalid operand b"))
			return
		}
	}

	if a.Bits() > int(s.maxNValue) || b.Bits() > int(s.maxNValue) {
		bits := a.Bits()
		if b.Bits() > bits {
			bits = b.Bits()
		}
		memErr := apperrors.MemoryError{
			Requested: (uint64(bits) + 7) / 8,
			Limit:     (s.maxNValue + 7) / 8,
		}
		s.writeError(w, apperrors.NewRequestError(http.StatusBadRequest, memErr, "operand exceeds the configured bit-length limit"))
		return
	}

	resp, err := s.evaluateArith(req.Op, a, b, base)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) evaluateArith(op string, a, b biguint.BigUint, base int) (arithResponse, error) {
	switch op {
	case "add":
		r := a.Add(b)
		text, _ := r.Text(base)
		return arithResponse{Result: text}, nil
	case "sub":
		r, borrowed := a.Sub(b)
		text, _ := r.Text(base)
		return arithResponse{Result: text, Carry: borrowed}, nil
	case "mul":
		r := a.Mul(b)
		text, _ := r.Text(base)
		return arithResponse{Result: text}, nil
	case "div":
		r, err := a.Div(b)
		if err != nil {
			return arithResponse{}, apperrors.NewRequestError(http.StatusBadRequest, err, "division failed")
		}
		text, _ := r.Text(base)
		return arithResponse{Result: text}, nil
	case "mod":
		r, err := a.Mod(b)
		if err != nil {
			return arithResponse{}, apperrors.NewRequestError(http.StatusBadRequest, err, "modulo failed")
		}
		text, _ := r.Text(base)
		return arithResponse{Result: text}, nil
	case "cmp":
		return arithResponse{Result: cmpSymbol(a.Cmp(b))}, nil
	default:
		return arithResponse{}, apperrors.NewRequestError(http.StatusBadRequest, nil, "unknown op %q", op)
	}
}

func cmpSymbol(c int) string {
	switch {
	case c < 0:
		return "-1"
	case c > 0:
		return "1"
	default:
		return "0"
	}
}

// healthzResponse reports liveness plus enough host telemetry for an
// operator to eyeball resource pressure without a separate metrics scrape.
type healthzResponse struct {
	Status        string  `json:"status"`
	CPUPercent    float64 `json:"cpu_percent"`
	MemPercent    float64 `json:"mem_percent"`
	HeapAllocByte uint64  `json:"heap_alloc_bytes"`
}

// handleHealthz serves GET /healthz with a liveness response augmented by a
// host resource snapshot.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	host := sysmon.Sample()
	mem := s.memoryCollector.Snapshot()
	s.writeJSON(w, http.StatusOK, healthzResponse{
		Status:        "ok",
		CPUPercent:    host.CPUPercent,
		MemPercent:    host.MemPercent,
		HeapAllocByte: mem.HeapAlloc,
	})
}
