package middleware

import (
	"log"
	"time"

	"github.com/Icarus-313/Poridhi-Framework/app/types"
)

const startTimeKey = "middleware.start_time"

// Logging prints one line per request on the way in and the handling
// duration on the way out. The start time travels on the request's
// per-call metadata, so concurrent calls never share state.
type Logging struct{}

func (Logging) Before(req *types.Request) error {
	log.Printf("%s %s", req.Method(), req.Path())
	req.Set(startTimeKey, time.Now())
	return nil
}

func (Logging) After(req *types.Request, res *types.Response) (*types.Response, error) {
	if start, ok := req.Value(startTimeKey).(time.Time); ok {
		log.Printf("Response took %.3f seconds", time.Since(start).Seconds())
	}
	return res, nil
}

// Security appends defensive headers to every response it sees.
type Security struct{}

func (Security) Before(req *types.Request) error { return nil }

func (Security) After(req *types.Request, res *types.Response) (*types.Response, error) {
	res.AddHeader("X-Content-Type-Options", "nosniff")
	res.AddHeader("X-Frame-Options", "DENY")
	return res, nil
}
