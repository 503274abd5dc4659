package utils

import (
	"coursepanel/models"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// LinkResult is the probe outcome for one course URL
type LinkResult struct {
	CourseID int    `json:"courseId"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	Url      string `json:"url"`
	Status   int    `json:"status"`
	Ok       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
}

func probe(client *resty.Client, source string, course models.Course) *LinkResult {
	if course.Url == "" || course.Url == "#" {
		return nil
	}

	result := LinkResult{
		CourseID: course.ID,
		Title:    course.Title,
		Source:   source,
		Url:      course.Url,
	}

	resp, err := client.R().Head(course.Url)
	if err != nil {
		log.Printf("Link check failed for %s: %v", course.Url, err)
		result.Error = err.Error()
		return &result
	}

	result.Status = resp.StatusCode()
	result.Ok = resp.StatusCode() >= 200 && resp.StatusCode() < 400
	return &result
}

// CheckCourseLinks probes every course URL in the document (main list plus
// per-page lists) and reports the status per course
func CheckCourseLinks(doc models.ContentDocument) []LinkResult {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	var results []LinkResult
	for _, course := range doc.Courses {
		if r := probe(client, "main", course); r != nil {
			results = append(results, *r)
		}
	}
	for _, page := range doc.Pages {
		for _, course := range page.Courses {
			if r := probe(client, page.Slug, course); r != nil {
				results = append(results, *r)
			}
		}
	}
	return results
}
