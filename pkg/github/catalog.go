package github

var languages = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Ruby", "PHP",
	"C", "C++", "C#", "Swift", "Kotlin", "Rust", "Vue", "React", "Angular",
	"Svelte", "Django", "Flask", "Ruby on Rails", "Laravel", "Spring", "HTML", "CSS",
}

var topics = []string{
	"web", "api", "cli", "framework", "library", "tools",
	"database", "machine-learning", "devops", "security",
}

// Languages returns the languages offered as structured filters
func Languages() []string {
	return append([]string(nil), languages...)
}

// Topics returns the topics offered as structured filters
func Topics() []string {
	return append([]string(nil), topics...)
}

// TopicInfo describes a browsable topic
type TopicInfo struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Featured    bool   `json:"featured" yaml:"featured"`
	Icon        string `json:"icon" yaml:"icon"`
}

var popularTopics = []TopicInfo{
	{Name: "ai", Description: "Explore cutting-edge artificial intelligence projects, from machine learning frameworks to neural networks", Featured: true, Icon: "carbon:machine-learning"},
	{Name: "web-development", Description: "Modern web development frameworks, tools, and libraries for building amazing web applications", Featured: true, Icon: "carbon:development"},
	{Name: "cloud-native", Description: "Tools and platforms for building scalable, resilient cloud-native applications", Featured: true, Icon: "carbon:cloud-services"},
	{Name: "devops", Description: "Automation, CI/CD, infrastructure as code, and DevOps best practices", Featured: true, Icon: "carbon:deployment-pattern"},
	{Name: "blockchain", Description: "Decentralized applications, smart contracts, and blockchain development tools", Featured: true, Icon: "carbon:blockchain"},
	{Name: "mobile", Description: "Cross-platform frameworks and native app development tools", Featured: true, Icon: "carbon:devices"},
	{Name: "security", Description: "Security tools, penetration testing, and cybersecurity resources", Featured: true, Icon: "carbon:security"},
	{Name: "data-science", Description: "Data analysis, visualization, and machine learning tools", Featured: true, Icon: "carbon:data-vis-1"},
	{Name: "ui-design", Description: "Beautiful UI components, design systems, and frontend frameworks", Icon: "carbon:hashtag"},
	{Name: "api", Description: "API development tools, documentation, and backend services", Icon: "carbon:hashtag"},
	{Name: "testing", Description: "Testing frameworks and tools for quality assurance", Icon: "carbon:hashtag"},
	{Name: "productivity", Description: "Developer tools and utilities to boost your productivity", Icon: "carbon:hashtag"},
	{Name: "game-dev", Description: "Game engines, frameworks, and tools for game development", Icon: "carbon:hashtag"},
	{Name: "iot", Description: "Internet of Things platforms and embedded systems development", Icon: "carbon:hashtag"},
	{Name: "cli", Description: "Command-line tools and terminal utilities", Icon: "carbon:hashtag"},
}

// PopularTopics returns curated topic metadata, featured topics first
func PopularTopics() []TopicInfo {
	return append([]TopicInfo(nil), popularTopics...)
}
