package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ResponseCurrentTime returns the current time in milliseconds since the epoch
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewResponse creates a ResponseModel with the given code, data and text
func NewResponse(code int, data interface{}, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     2,
	}
}

// NewOKResponse creates a successful ResponseModel wrapping the given data
func NewOKResponse(data interface{}) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse creates a successful ResponseModel whose data holds a
// single entry plus references
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	data := map[string]interface{}{
		"entry":      entry,
		"references": references,
	}
	return NewOKResponse(data)
}

// NewListResponse creates a successful ResponseModel whose data holds a
// list plus references
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	data := map[string]interface{}{
		"list":          list,
		"limitExceeded": false,
		"references":    references,
	}
	return NewOKResponse(data)
}
