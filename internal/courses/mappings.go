package courses

// aliases folds common skill spellings onto catalog keys.
var aliases = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"reactjs":             "react",
	"react.js":            "react",
	"nodejs":              "node",
	"node.js":             "node",
	"postgres":            "sql",
	"postgresql":          "sql",
	"mysql":               "sql",
	"k8s":                 "kubernetes",
	"ml":                  "machine learning",
	"ai":                  "machine learning",
	"deep learning":       "machine learning",
	"amazon web services": "aws",
}

var catalog = map[string][]Course{
	"python": {
		{Title: "Python for Everybody Specialization", URL: "https://www.coursera.org/specializations/python"},
		{Title: "Automate the Boring Stuff with Python", URL: "https://www.udemy.com/course/automate/"},
	},
	"go": {
		{Title: "Programming with Google Go", URL: "https://www.coursera.org/specializations/google-golang"},
	},
	"java": {
		{Title: "Java Programming and Software Engineering Fundamentals", URL: "https://www.coursera.org/specializations/java-programming"},
	},
	"javascript": {
		{Title: "The Complete JavaScript Course", URL: "https://www.udemy.com/course/the-complete-javascript-course/"},
	},
	"react": {
		{Title: "React - The Complete Guide", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/"},
	},
	"node": {
		{Title: "The Complete Node.js Developer Course", URL: "https://www.udemy.com/course/the-complete-nodejs-developer-course-2/"},
	},
	"sql": {
		{Title: "SQL for Data Science", URL: "https://www.coursera.org/learn/sql-for-data-science"},
	},
	"aws": {
		{Title: "AWS Certified Solutions Architect", URL: "https://www.coursera.org/learn/aws-certified-solutions-architect-associate"},
		{Title: "AWS Fundamentals Specialization", URL: "https://www.coursera.org/specializations/aws-fundamentals"},
	},
	"docker": {
		{Title: "Docker Mastery: with Kubernetes + Swarm", URL: "https://www.udemy.com/course/docker-mastery/"},
	},
	"kubernetes": {
		{Title: "Getting Started with Google Kubernetes Engine", URL: "https://www.coursera.org/learn/google-kubernetes-engine"},
	},
	"devops": {
		{Title: "DevOps on AWS Specialization", URL: "https://www.coursera.org/specializations/aws-devops"},
	},
	"machine learning": {
		{Title: "Machine Learning Specialization", URL: "https://www.coursera.org/specializations/machine-learning-introduction"},
		{Title: "Deep Learning Specialization", URL: "https://www.coursera.org/specializations/deep-learning"},
	},
	"data science": {
		{Title: "IBM Data Science Professional Certificate", URL: "https://www.coursera.org/professional-certificates/ibm-data-science"},
	},
	"data analysis": {
		{Title: "Google Data Analytics Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-data-analytics"},
	},
	"tensorflow": {
		{Title: "DeepLearning.AI TensorFlow Developer", URL: "https://www.coursera.org/professional-certificates/tensorflow-in-practice"},
	},
	"communication": {
		{Title: "Improving Communication Skills", URL: "https://www.coursera.org/learn/wharton-communication-skills"},
	},
	"leadership": {
		{Title: "Leading People and Teams Specialization", URL: "https://www.coursera.org/specializations/leading-teams"},
	},
	"project management": {
		{Title: "Google Project Management Certificate", URL: "https://www.coursera.org/professional-certificates/google-project-management"},
	},
	"cybersecurity": {
		{Title: "Google Cybersecurity Professional Certificate", URL: "https://www.coursera.org/professional-certificates/google-cybersecurity"},
	},
	"linux": {
		{Title: "Open Source Software Development, Linux and Git", URL: "https://www.coursera.org/specializations/oss-development-linux-git"},
	},
}
