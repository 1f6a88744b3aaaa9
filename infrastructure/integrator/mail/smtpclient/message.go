package smtpclient

import (
	"bytes"
	"mime"
	"net/mail"
	"strings"
	"time"
)

// Message is a plain-text e-mail to a single recipient.
type Message struct {
	From     string
	FromName string
	To       string
	Subject  string
	Body     string
}

// Bytes renders the message as RFC 5322 text with CRLF line endings.
func (m Message) Bytes(date time.Time) []byte {
	from := mail.Address{Name: m.FromName, Address: m.From}
	to := mail.Address{Address: m.To}

	var buf bytes.Buffer
	writeHeader(&buf, "From", from.String())
	writeHeader(&buf, "To", to.String())
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", m.Subject))
	writeHeader(&buf, "Date", date.UTC().Format(time.RFC1123Z))
	writeHeader(&buf, "MIME-Version", "1.0")
	writeHeader(&buf, "Content-Type", "text/plain; charset=UTF-8")
	writeHeader(&buf, "Content-Transfer-Encoding", "8bit")
	buf.WriteString("\r\n")

	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return buf.Bytes()
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}
