package memory

import "careermate/internal/model"

// DefaultData is the built-in career catalog used when no external data
// source is configured.
func DefaultData() Data {
	return Data{
		RoleSkills: map[string][]string{
			"data scientist": {"Python", "SQL", "Statistics", "Machine Learning", "Pandas"},
			"web developer":  {"HTML", "CSS", "JavaScript", "React", "Node.js"},
			"data analyst":   {"Excel", "SQL", "Power BI", "Python", "Statistics"},
		},
		Listings: []model.JobListing{
			{Title: "Junior Data Scientist", Company: "TechCorp", Location: "Remote", Requirements: []string{"Python", "SQL"}},
			{Title: "Web Developer", Company: "WebWorld", Location: "New York", Requirements: []string{"JavaScript", "React"}},
			{Title: "Data Analyst", Company: "DataWorks", Location: "San Francisco", Requirements: []string{"Excel", "SQL", "Python"}},
		},
		Courses: map[string][]string{
			"SQL":        {"SQL for Beginners (Coursera) - https://example.com/sql", "Learn SQL (Udemy) - https://example.com/sql2"},
			"Statistics": {"Intro to Statistics (Khan Academy) - https://example.com/stat"},
			"Pandas":     {"Data Analysis with Pandas (YouTube) - https://example.com/pandas"},
			"Python":     {"Python 101 (Codecademy) - https://example.com/py"},
			"React":      {"React Crash Course (Ostad) - https://ostad.app/course/react-native-workshop"},
		},
	}
}
