package extract

// Default keyword tables. These are configuration values: extractors receive
// them at construction and callers may substitute their own tables. The
// resume and job sides keep separate skill tables because job postings tend
// to name a narrower, more standardized stack.

// DefaultSkillCategories returns the default resume-side skill table.
func DefaultSkillCategories() []Category {
	return []Category{
		{Label: "Programming Languages", Keywords: []string{
			"Python", "Java", "JavaScript", "JS", "TypeScript", "C++", "C#", "SQL", "R", "Go", "Rust",
			"Scala", "Perl", "Ruby", "Dart", "Objective-C", "Swift", "Kotlin",
		}},
		{Label: "AI / ML / NLP", Keywords: []string{
			"TensorFlow", "PyTorch", "Keras", "Scikit-learn", "XGBoost", "LightGBM", "CatBoost",
			"Machine Learning", "ML", "Deep Learning", "DL", "NLP", "LLM",
			"Transformers", "Hugging Face", "LangChain", "OpenAI API", "RAG", "Prompt Engineering",
			"LLM Fine-tuning", "AutoML", "spaCy", "NLTK", "BERT", "GPT", "Llama", "Claude",
			"FAISS", "ChromaDB", "Weaviate", "Haystack", "H2O.ai", "Vertex AI",
		}},
		{Label: "Web Development", Keywords: []string{
			"HTML", "CSS", "SASS", "LESS", "Tailwind CSS", "Bootstrap", "Material-UI", "Chakra UI",
			"React", "Next.js", "Vue.js", "Angular", "Node.js", "Express", "Django", "Flask",
			"FastAPI", "ASP.NET", "Laravel", "Ruby on Rails", "REST API", "GraphQL", "WebSockets",
			"tRPC", "Zustand", "Redux", "React Query", "Vite", "Webpack", "Parcel", "Babel",
		}},
		{Label: "Cloud & DevOps", Keywords: []string{
			"AWS", "Azure", "GCP", "DigitalOcean", "Heroku", "Vercel", "Netlify",
			"Docker", "Kubernetes", "Helm", "Terraform", "Ansible", "Pulumi", "CloudFormation",
			"GitHub Actions", "GitLab CI/CD", "Jenkins", "CircleCI", "ArgoCD",
			"Linux", "Bash", "Shell Scripting", "Serverless", "Prometheus", "Grafana", "Istio",
		}},
		{Label: "Databases", Keywords: []string{
			"MySQL", "PostgreSQL", "MongoDB", "SQLite", "BigQuery", "Snowflake", "Oracle", "SQL Server",
			"Redis", "Firestore", "Cassandra", "DynamoDB", "InfluxDB", "MariaDB", "Redshift",
			"Neo4j", "Supabase", "ElasticSearch", "DuckDB",
		}},
		{Label: "Visualization & BI", Keywords: []string{
			"Power BI", "Tableau", "Looker", "Google Data Studio", "Plotly", "Dash",
			"Matplotlib", "Seaborn", "D3.js", "Grafana", "Apache Superset", "Metabase",
		}},
		{Label: "Soft Skills", Keywords: []string{
			"Communication", "Problem Solving", "Leadership", "Teamwork", "Adaptability",
			"Strategic Thinking", "Attention to Detail", "Time Management", "Creativity",
			"Critical Thinking", "Collaboration", "Decision Making", "Self-Motivation",
			"Work Ethic", "Conflict Resolution", "Public Speaking", "Presentation Skills",
			"Mentoring", "Accountability", "Customer Focus", "Project Management",
			"Empathy", "Emotional Intelligence",
		}},
	}
}

// DefaultJobSkillCategories returns the default job-side skill table.
func DefaultJobSkillCategories() []Category {
	return []Category{
		{Label: "Programming Languages", Keywords: []string{
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "SQL", "Go", "Rust", "Kotlin", "Ruby",
		}},
		{Label: "AI / ML / NLP", Keywords: []string{
			"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn", "Keras",
			"NLP", "Transformer", "OpenAI", "LangChain", "spaCy", "LLM", "BERT", "GPT",
		}},
		{Label: "Web Development", Keywords: []string{
			"HTML", "CSS", "React", "Next.js", "Angular", "Vue.js", "Node.js", "Express", "Flask", "Django",
		}},
		{Label: "Cloud & DevOps", Keywords: []string{
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Jenkins", "GitHub Actions",
		}},
		{Label: "Databases", Keywords: []string{
			"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Redis", "Oracle", "Firestore", "ElasticSearch",
		}},
		{Label: "Visualization & BI", Keywords: []string{
			"Power BI", "Tableau", "Plotly", "Seaborn", "Matplotlib", "Looker",
		}},
		{Label: "Soft Skills", Keywords: []string{
			"Communication", "Problem Solving", "Teamwork", "Adaptability", "Time Management",
			"Critical Thinking", "Leadership", "Creativity",
		}},
	}
}

// DefaultLanguages returns the default list of spoken or written languages.
func DefaultLanguages() []string {
	return []string{
		"English", "Arabic", "French", "German", "Spanish", "Italian", "Mandarin",
		"Chinese", "Hindi", "Japanese", "Korean", "Portuguese", "Russian", "Turkish",
		"Dutch", "Bengali", "Urdu", "Polish", "Tamil", "Telugu", "Swedish", "Hebrew",
		"Malay", "Thai", "Vietnamese", "Greek", "Czech", "Romanian", "Hungarian",
		"Finnish", "Ukrainian", "Persian", "Punjabi", "Serbian", "Croatian",
	}
}

// DefaultKnownCertifications returns the default certification name list.
func DefaultKnownCertifications() []string {
	return []string{
		"AWS Certified", "Google Cloud Certified", "Microsoft Certified", "Azure Fundamentals", "AZ-900",
		"Certified Scrum Master", "Scrum Master", "CompTIA A+", "CompTIA Security+", "CompTIA Network+",
		"Cisco Certified", "CCNA", "CKA", "CKAD", "Oracle Certified", "TOGAF", "ITIL", "CISSP",
		"Adobe Certified", "PMP", "PRINCE2", "Coursera", "Udemy", "edX", "DataCamp", "Trailhead",
		"IBM Data Science", "TensorFlow Developer", "Deep Learning Specialization", "Salesforce Certified",
		"LinkedIn Skill Assessment", "Superbadge", "Kubernetes Mastery", "AI For Everyone", "OCI Architect",
		"Google Cloud Professional", "Microsoft Azure Fundamentals", "OCI 2023 Architect Associate",
		"Certified Kubernetes Administrator",
	}
}

// DefaultDegrees returns the default degree token list for resume education
// parsing.
func DefaultDegrees() []string {
	return []string{
		"Bachelor", "Master", "B.Sc", "M.Sc", "B.S.", "M.S.", "BA", "MA", "PhD", "Ph.D", "B.E", "M.E",
		"B.Tech", "M.Tech", "MBA", "MCA", "BBA", "LLB", "LLM", "MD", "DDS", "Diploma", "High School",
		"Associate Degree", "Doctorate", "Postgraduate", "Undergraduate", "MBBS", "CFA", "CA", "M.Ed", "EdD",
	}
}

// DefaultJobDegreeKeywords returns the degree tokens recognized in job
// postings.
func DefaultJobDegreeKeywords() []string {
	return []string{
		"Bachelor", "Master", "PhD", "Doctorate", "BSc", "MSc", "MBA", "Undergraduate", "Graduate",
		"BS", "MS", "BA", "MA", "BEng", "MEng", "JD", "MD", "Associate",
	}
}

// DefaultFieldsOfStudy returns the fields of study recognized in job postings.
func DefaultFieldsOfStudy() []string {
	return []string{
		"Computer Science", "Engineering", "Information Technology", "Data Science",
		"Business", "Mathematics", "Statistics", "Economics", "Physics", "Artificial Intelligence",
		"Cybersecurity", "Software Engineering", "Electrical Engineering",
	}
}
