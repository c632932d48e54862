package models

import "time"

// Record is a single parsed log line.
//
// Records are created once by the line parser and shared by pointer afterwards: the catalog arena
// and every index refer to the same value. Nothing mutates a Record after parsing.
//
// Example JSON:
//
//	{
//	  "timestamp": "2012-09-13T16:04:22Z",
//	  "level": "DEBUG",
//	  "sessionId": "34523",
//	  "businessId": "1329",
//	  "requestId": "65d33",
//	  "description": "Starting new session"
//	}
type Record struct {
	Timestamp   time.Time `json:"timestamp"`
	Level       Level     `json:"level"`
	SessionID   string    `json:"sessionId"`
	BusinessID  string    `json:"businessId"`
	RequestID   string    `json:"requestId"`
	Description string    `json:"description"`
}
