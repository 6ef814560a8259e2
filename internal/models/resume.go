package models

import "time"

type Resume struct {
	ID            int64     `json:"id"`
	FileName      string    `json:"fileName"`
	FilePath      string    `json:"filePath,omitempty"`
	FileType      string    `json:"fileType,omitempty"`
	FileSize      int64     `json:"fileSize"`
	ParsedContent string    `json:"parsedContent,omitempty"`
	Skills        string    `json:"skills,omitempty"`
	Experience    string    `json:"experience,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type ResumeUploadResponse struct {
	Message string `json:"message"`
	Resume  Resume `json:"resume"`
}
