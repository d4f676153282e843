package web

// response is the envelope every handler answers with. Payload-carrying
// variants embed it so errors always share the same shape.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func ack() response {
	return response{Success: true}
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if ok := asMultierr(err, &merr); ok {
		var errs []error
		for _, e := range merr.Unwrap() {
			errs = append(errs, unwrap(e)...)
		}
		return errs
	}
	return []error{err}
}

func asMultierr(err error, target *multierr) bool {
	m, ok := err.(multierr)
	if !ok {
		return false
	}
	*target = m
	return true
}

// joinedMessage flattens an errors.Join tree into one client-facing string.
func joinedMessage(err error) string {
	msg := ""
	for _, e := range unwrap(err) {
		if msg != "" {
			msg += "; "
		}
		msg += e.Error()
	}
	return msg
}

type loginResponse struct {
	response
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type tokenResponse struct {
	response
	Token string `json:"token"`
}

type profileResponse struct {
	response
	User userResponse `json:"user"`
}

type eventsResponse struct {
	response
	Events []eventResponse `json:"events"`
}

type eventPayloadResponse struct {
	response
	Event eventResponse `json:"event"`
}

type messagesResponse struct {
	response
	Messages []messageResponse `json:"messages"`
}

type infoPayloadResponse struct {
	response
	Info infoResponse `json:"info"`
}

type dashboardResponse struct {
	response
	Stats statsResponse `json:"stats"`
}
