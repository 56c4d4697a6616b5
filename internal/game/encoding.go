package game

import (
	"bytes"
	"encoding/gob"
)

func DecodeSession(buf []byte) (*Session, error) {
	var s Session
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Session) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
