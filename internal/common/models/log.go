package models

import "time"

// Log is the shape of entries in the "logs" collection written by the async
// zap tee core. The retention job prunes this collection nightly.
type Log struct {
	Message      string    `bson:"message"`
	IpAddress    string    `bson:"ip_address,omitempty"`
	UserID       string    `bson:"user_id,omitempty"`
	Caller       string    `bson:"caller,omitempty"`
	LogLevelId   int       `bson:"log_level_id"`
	AppId        string    `bson:"app_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc"`
}
