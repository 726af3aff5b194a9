package fallback

import "github.com/planflow/planflow/internal/plan"

// templateTask is one (name, duration, owner) tuple used to synthesize a
// schedule.
type templateTask struct {
	text     string
	duration int
	owner    string
}

// planTemplate is the static data behind one archetype. The summary contains
// a single %d placeholder for the extracted timeline in weeks.
type planTemplate struct {
	name       string
	summary    string
	milestones []string
	stack      []plan.TechnologyStackEntry
	resources  []string
	tasks      []templateTask
}

// templateFor returns the template for an archetype. The switch is total over
// the enum; unknown values fall through to the generic template.
func templateFor(a Archetype) planTemplate {
	switch a {
	case ArchetypeFitness:
		return planTemplate{
			name:    "Fitness App Project",
			summary: "A %d-week project to build a fitness tracking application with workout logging, progress charts, and goal setting. The plan covers design, development, testing, and launch.",
			milestones: []string{
				"UX Research & Design Complete",
				"Workout Tracking Core Complete",
				"Progress Analytics Live",
				"App Store Launch",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Mobile App", Technology: "React Native", Rationale: "Single codebase for iOS and Android"},
				{Component: "Backend", Technology: "Node.js", Rationale: "Fast API development with a large ecosystem"},
				{Component: "Database", Technology: "PostgreSQL", Rationale: "Reliable storage for workout and user data"},
				{Component: "Analytics", Technology: "Mixpanel", Rationale: "Track engagement and retention"},
			},
			resources: []string{
				"1x Product Designer",
				"2x Mobile Developers",
				"1x Backend Developer",
				"1x QA Engineer",
			},
			tasks: []templateTask{
				{"Requirements & UX Research", 4, "Product Designer"},
				{"UI Design & Prototyping", 6, "Product Designer"},
				{"Workout Tracking Features", 10, "Mobile Developer"},
				{"Backend & Sync API", 8, "Backend Developer"},
				{"Testing & Beta Feedback", 6, "QA Engineer"},
				{"App Store Submission & Launch", 3, "Mobile Developer"},
			},
		}

	case ArchetypeEcommerce:
		return planTemplate{
			name:    "E-Commerce Platform Project",
			summary: "A %d-week project to launch an online store with product catalog, cart, checkout, and order management. The plan covers storefront design, payment integration, and go-live.",
			milestones: []string{
				"Storefront Design Complete",
				"Catalog & Cart Functional",
				"Payments Integrated",
				"Store Launch",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Storefront", Technology: "Next.js", Rationale: "SEO-friendly server rendering for product pages"},
				{Component: "Backend", Technology: "Go", Rationale: "Fast, reliable order and inventory services"},
				{Component: "Database", Technology: "PostgreSQL", Rationale: "Transactional integrity for orders"},
				{Component: "Payments", Technology: "Stripe", Rationale: "Proven checkout with minimal PCI scope"},
			},
			resources: []string{
				"1x UI/UX Designer",
				"1x Frontend Developer",
				"1x Backend Developer",
				"1x QA Engineer",
			},
			tasks: []templateTask{
				{"Store Planning & Catalog Structure", 4, "UI/UX Designer"},
				{"Storefront Design", 6, "UI/UX Designer"},
				{"Catalog & Cart Development", 9, "Frontend Developer"},
				{"Checkout & Payment Integration", 7, "Backend Developer"},
				{"Order Management & Testing", 6, "QA Engineer"},
				{"Launch & Monitoring Setup", 3, "Backend Developer"},
			},
		}

	case ArchetypePortfolio:
		return planTemplate{
			name:    "Portfolio Website Project",
			summary: "A %d-week project to design and publish a personal portfolio website showcasing selected work, an about page, and a contact form.",
			milestones: []string{
				"Content & Structure Finalized",
				"Design Complete",
				"Site Built & Reviewed",
				"Site Live",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Site", Technology: "Astro", Rationale: "Fast static output ideal for content sites"},
				{Component: "Styling", Technology: "Tailwind CSS", Rationale: "Quick, consistent visual iteration"},
				{Component: "Hosting", Technology: "Netlify", Rationale: "Zero-ops deployment with previews"},
			},
			resources: []string{
				"1x Designer",
				"1x Frontend Developer",
			},
			tasks: []templateTask{
				{"Content Gathering & Sitemap", 3, "Designer"},
				{"Visual Design", 5, "Designer"},
				{"Site Development", 7, "Frontend Developer"},
				{"Content Integration", 4, "Frontend Developer"},
				{"Review & Polish", 3, "Designer"},
				{"Deployment & Launch", 2, "Frontend Developer"},
			},
		}

	case ArchetypeMarketing:
		return planTemplate{
			name:    "Marketing Campaign Project",
			summary: "A %d-week campaign covering audience research, creative production, channel setup, launch, and performance optimization.",
			milestones: []string{
				"Audience & Messaging Defined",
				"Creative Assets Approved",
				"Campaign Live",
				"Optimization Report Delivered",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Landing Pages", Technology: "Webflow", Rationale: "Rapid page iteration without engineering"},
				{Component: "Email", Technology: "Mailchimp", Rationale: "Audience segmentation and automation"},
				{Component: "Analytics", Technology: "Google Analytics", Rationale: "Attribution and conversion tracking"},
			},
			resources: []string{
				"1x Campaign Manager",
				"1x Copywriter",
				"1x Graphic Designer",
				"1x Performance Marketer",
			},
			tasks: []templateTask{
				{"Audience Research & Strategy", 5, "Campaign Manager"},
				{"Messaging & Copywriting", 5, "Copywriter"},
				{"Creative Asset Production", 7, "Graphic Designer"},
				{"Channel & Tracking Setup", 4, "Performance Marketer"},
				{"Campaign Launch", 2, "Campaign Manager"},
				{"Monitoring & Optimization", 8, "Performance Marketer"},
			},
		}

	case ArchetypeMobile:
		return planTemplate{
			name:    "Mobile App Project",
			summary: "A %d-week project to design, build, and ship a mobile application, covering user research, core feature development, beta testing, and store release.",
			milestones: []string{
				"Design & Prototype Approved",
				"Core Features Complete",
				"Beta Testing Complete",
				"Store Release",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Mobile App", Technology: "Flutter", Rationale: "Single codebase with native performance"},
				{Component: "Backend", Technology: "Firebase", Rationale: "Managed auth, data, and push notifications"},
				{Component: "CI/CD", Technology: "GitHub Actions", Rationale: "Automated builds and store deployment"},
			},
			resources: []string{
				"1x Product Designer",
				"2x Mobile Developers",
				"1x QA Engineer",
			},
			tasks: []templateTask{
				{"User Research & Scoping", 4, "Product Designer"},
				{"UI Design & Prototype", 6, "Product Designer"},
				{"Core Feature Development", 12, "Mobile Developer"},
				{"Backend Integration", 6, "Mobile Developer"},
				{"Beta Testing & Fixes", 6, "QA Engineer"},
				{"Store Submission & Release", 3, "Mobile Developer"},
			},
		}

	default:
		return planTemplate{
			name:    "Project Plan",
			summary: "A %d-week project to deliver a modern solution, covering requirements, design, development, testing, and deployment with clear milestones.",
			milestones: []string{
				"Requirements & Design Complete",
				"Development Phase 1 Complete",
				"Testing & QA Complete",
				"Production Deployment",
			},
			stack: []plan.TechnologyStackEntry{
				{Component: "Frontend", Technology: "React", Rationale: "Component-based architecture and rich ecosystem"},
				{Component: "Backend", Technology: "Go", Rationale: "Simple deployment and strong concurrency support"},
				{Component: "Database", Technology: "PostgreSQL", Rationale: "Robust relational database with excellent data integrity"},
				{Component: "Deployment", Technology: "Docker", Rationale: "Consistent environments from development to production"},
			},
			resources: []string{
				"1x Project Manager",
				"1x UI/UX Designer",
				"2x Full-Stack Developers",
				"1x QA Engineer",
			},
			tasks: []templateTask{
				{"Project Planning & Requirements", 3, "Project Manager"},
				{"UI/UX Design", 5, "UI/UX Designer"},
				{"Frontend Development", 7, "Full-Stack Developer"},
				{"Backend Development", 7, "Full-Stack Developer"},
				{"Integration & Testing", 5, "QA Engineer"},
				{"Deployment & Launch", 2, "Full-Stack Developer"},
			},
		}
	}
}
