package server

// Testimonial is one carousel slide.
type Testimonial struct {
	Quote  string
	Author string
	Role   string
}

var (
	Headline = `Backend engineer building distributed systems that stay up.`

	AboutMe = `I love building software that is both useful and fun, and I am always curious about how things
	work behind the scenes. Most of my projects start with a simple idea and turn into a chance to learn
	something new, whether it is exploring a different language, experimenting with tools, or solving
	tricky problems.`

	Skills = []string{"Go", "Java", "Kubernetes", "PostgreSQL", "Docker", "Terraform", "React", "Kafka"}

	Testimonials = []Testimonial{
		{
			Quote:  `Shipped our platform migration a quarter early and left the on-call rotation quieter than it had ever been.`,
			Author: "Sarah Chen",
			Role:   "Engineering Manager",
		},
		{
			Quote:  `The clearest design docs I have reviewed. Every tradeoff was written down before a line of code.`,
			Author: "Marcus Webb",
			Role:   "Principal Engineer",
		},
		{
			Quote:  `Took a flaky CI pipeline to green in two weeks and taught the whole team how it works.`,
			Author: "Priya Natarajan",
			Role:   "DevOps Lead",
		},
	}
)
