package knowledge

// Base is the ordered knowledge base. Order is load-bearing: entries are
// evaluated top to bottom and the first match wins, so overlapping keywords
// (for example "backend" under both web and database) resolve to the earlier
// entry. Do not reorder or deduplicate.
var Base = []Entry{
	{
		Topic:    "about",
		Keywords: []string{"about you", "who are you", "background"},
		Answer: Answer{
			Response:   "🎯 I'm the digital embodiment of HEX - Passionate Tech Innovation hustler, Here's my story:\n\n📚 BCAD Graduate from IIE Varsity College (2022-2024)\n💼 Currently CDO at Terrock Technologies\n🏆 Built apps for NSRI (drowning prevention), worked on AutoFixer\n🌍 From Cape Town to the global tech scene\n⚡ AWS certified, full-stack specialist, blockchain enthusiast\n\nStarted graphic design in high school, now building million-dollar applications. That's the HUSTLER evolution! 📈",
			Motivation: "Remember: Every expert was once a beginner who refused to quit! Your journey starts with the first line of code you write TODAY! 🔥",
		},
	},
	{
		Topic:    "skills",
		Keywords: []string{"skills", "technologies", "tech stack"},
		Answer: Answer{
			Response:   "🛠️ MY TECH ARSENAL (4+ Years Battle-Tested):\n\n💻 LANGUAGES: Java, C#, Kotlin, TypeScript, JavaScript, HTML, CSS\n📱 MOBILE: React Native, Android Studio, .NET MAUI\n🌐 WEB: ASP.NET, MVC, Bootstrap, Full-Stack Development\n🗄️ DATABASE: Advanced SQL, Database Architecture\n☁️ CLOUD: AWS (Core Services + Cloud Basics Certified)\n🔒 SECURITY: Application Development Security\n🎨 DESIGN: UI/UX with Figma, System Analysis\n📊 MANAGEMENT: IT Project Management, Agile\n🔗 API: RESTful services, C# API development\n\nPlus emerging tech: AI, Blockchain, Quantum Computing exploration! 🚀",
			Motivation: "Master your tools like a craftsman masters their trade! Every skill you learn multiplies your value in the market! 💎",
		},
	},
	{
		Topic:    "languages",
		Keywords: []string{"java", "programming language", "which language"},
		Answer: Answer{
			Response:   "☕ JAVA - My Foundation Language!\n\nWhy Java rocks for hustlers:\n✅ Enterprise-level opportunities (BIG money!)\n✅ Android development gateway\n✅ Spring Boot for powerful backends\n✅ Massive job market globally\n✅ Object-oriented thinking foundation\n\n🎯 C# is my other powerhouse - .NET ecosystem is GOLD!\n🚀 JavaScript/TypeScript for full-stack domination\n⚡ Kotlin for modern Android (Java's cool cousin)\n\nStart with Java → Master fundamentals → Expand your empire! 📈",
			Motivation: "Pick ONE language, become DANGEROUS with it, then conquer the rest! Depth before breadth, hustler! 🔥",
		},
	},
	{
		Topic:    "career",
		Keywords: []string{"career", "job", "advice", "start"},
		Answer: Answer{
			Response:   "💼 CAREER HUSTLER BLUEPRINT:\n\n🎯 PHASE 1: Foundation (0-1 years)\n• Master 1-2 languages deeply\n• Build 3-5 portfolio projects\n• Contribute to open source\n• Network like your life depends on it\n\n🚀 PHASE 2: Specialization (1-3 years)\n• Choose your battlefield (web, mobile, AI, etc.)\n• Get certified (AWS, Azure, etc.)\n• Freelance to build rep\n• Start your own projects\n\n👑 PHASE 3: Empire Building (3+ years)\n• Launch your own company\n• Mentor others\n• Speak at conferences\n• Build passive income streams\n\nI went from high school graphic design to CDO - your turn! 📊",
			Motivation: "Your career isn't just a job - it's your empire! Build it with intention, hustle, and relentless improvement! 👑",
		},
	},
	{
		Topic:    "mobile",
		Keywords: []string{"mobile", "react native", "android"},
		Answer: Answer{
			Response:   "📱 MOBILE DEVELOPMENT MASTERY:\n\n🔥 React Native (My Weapon of Choice):\n• One codebase → iOS + Android = 2x efficiency!\n• JavaScript skills transfer directly\n• Expo makes deployment smooth\n• Perfect for startups and MVPs\n\n⚡ Native Android (Kotlin/Java):\n• Maximum performance and control\n• Access to all platform features\n• Better for complex applications\n• Higher learning curve but worth it\n\n💡 PRO TIP: Start with React Native, learn native later. I built AutoFixer's mobile features this way - maximum impact, minimum time investment! 🎯",
			Motivation: "Mobile is the future! Every business needs an app - position yourself as the solution provider! 💰",
		},
	},
	{
		Topic:    "web",
		Keywords: []string{"web", "asp.net", "frontend", "backend"},
		Answer: Answer{
			Response:   "🌐 WEB DEVELOPMENT DOMINANCE:\n\n🎯 ASP.NET + MVC (My Backend Power):\n• Enterprise-grade scalability\n• Seamless C# integration\n• Robust security features\n• Microsoft ecosystem advantage\n\n⚡ Full-Stack Approach:\n• Frontend: React/TypeScript\n• Backend: ASP.NET Core\n• Database: SQL Server/PostgreSQL\n• Deployment: Azure/AWS\n\n💻 Bootstrap + CSS for rapid UI development\n🔗 RESTful APIs for seamless integration\n📊 Real-time features with SignalR\n\nBuilt multiple MVC applications during my BCAD - from concept to production! 🚀",
			Motivation: "The web is your canvas - paint your digital masterpiece and watch clients pay premium for your art! 🎨💎",
		},
	},
	{
		// "backend" and "sql" overlap with the web entry above; web wins by order.
		Topic:    "database",
		Keywords: []string{"database", "sql", "backend"},
		Answer: Answer{
			Response:   "🗄️ DATABASE MASTERY - The Foundation of Everything:\n\n💪 Advanced SQL Skills:\n• Complex joins and subqueries\n• Stored procedures and functions\n• Performance optimization\n• Data modeling and normalization\n\n🏗️ Architecture Principles:\n• Scalable schema design\n• Indexing strategies\n• Security best practices\n• Backup and recovery plans\n\n⚡ Technologies I Work With:\n• SQL Server (Microsoft ecosystem)\n• PostgreSQL (open source power)\n• Entity Framework (ORM mastery)\n• Database-first and code-first approaches\n\nData is the new oil - master its storage and retrieval! 📊",
			Motivation: "Your database skills determine your app's scalability. Build strong foundations - skyscrapers need solid ground! 🏗️",
		},
	},
	{
		Topic:    "cloud",
		Keywords: []string{"cloud", "aws", "deployment"},
		Answer: Answer{
			Response:   "☁️ CLOUD COMPUTING - AWS CERTIFIED HUSTLER:\n\n🎓 My AWS Certifications:\n• Cloud Basics Foundation\n• Core Services Specialist\n\n🚀 Essential AWS Services:\n• EC2: Virtual servers on demand\n• S3: Scalable storage solutions\n• RDS: Managed database services\n• Lambda: Serverless computing\n• CloudFront: Global content delivery\n\n💡 Why Cloud Matters:\n• Infinite scalability\n• Pay-as-you-grow model\n• Global reach instantly\n• Enterprise-level security\n\nCloud skills = High-paying opportunities! I leverage AWS for all my production apps. 💰",
			Motivation: "The cloud isn't just technology - it's your ticket to building applications that scale from 1 to 1 million users! 🌍",
		},
	},
	{
		Topic:    "freelance",
		Keywords: []string{"freelance", "business", "startup", "money"},
		Answer: Answer{
			Response:   "💰 FREELANCE TO EMPIRE BLUEPRINT:\n\n🎯 Start Freelancing Smart:\n• Build portfolio on GitHub (like mine: github.com/casbyhexer)\n• Upwork/Fiverr for initial clients\n• Network through LinkedIn\n• Deliver MORE than promised\n\n🚀 Scale to Agency:\n• Hire other developers\n• Focus on sales and strategy\n• Build recurring client relationships\n• Create productized services\n\n👑 My Journey:\n• High school: Graphic design client work\n• College: NSRI app development\n• Current: CDO at Terrock Technologies\n• Future: Tech empire building!\n\nFrom side hustle to main hustle - that's the way! 📈",
			Motivation: "Your skills are your currency! Every project you complete is a deposit in your success bank account! 💎",
		},
	},
	{
		Topic:    "learning",
		Keywords: []string{"learn", "study", "education", "university"},
		Answer: Answer{
			Response:   "📚 EDUCATION HUSTLER STRATEGY:\n\n🎓 My Academic Foundation:\n• BCAD at IIE Varsity College (2022-2024)\n• Work Integrated Learning with NSRI\n• Continuous certifications (AWS, etc.)\n\n💡 Learning Optimization:\n• Theory + Practice simultaneously\n• Build projects while studying\n• Contribute to open source\n• Network with classmates/professors\n\n🔥 Beyond Formal Education:\n• YouTube/Udemy courses\n• Tech blogs and documentation\n• Conference talks and webinars\n• Peer learning and code reviews\n\nEducation never stops - adapt or get left behind! 🚀",
			Motivation: "Your degree opens doors, but your skills build empires! Stay curious, stay hungry, stay learning! 🧠⚡",
		},
	},
	{
		Topic:    "motivation",
		Keywords: []string{"motivation", "inspiration", "mindset", "success"},
		Answer: Answer{
			Response:   "🔥 HUSTLER MINDSET ACTIVATION:\n\n💪 My Personal Formula:\n• Ambitious vision + Daily execution\n• Creativity meets disciplined work\n• Leadership through serving others\n• Innovation over imitation\n\n🎯 Success Principles:\n• Embrace the grind - comfort kills dreams\n• Build while others sleep\n• Network like your future depends on it\n• Fail fast, learn faster\n• Technology + Business = Wealth\n\n🏆 Athletic Mindset:\n• Train consistently\n• Compete with yesterday's self\n• Push through when it hurts\n• Champions are made in practice\n\nFrom relentless improvement! 📈",
			Motivation: "Success isn't a destination - it's a daily choice to show up, level up, and never give up! You're not just coding, you're crafting your destiny! 👑🔥",
		},
	},
	{
		Topic:    "leadership",
		Keywords: []string{"project management", "leadership", "team"},
		Answer: Answer{
			Response:   "👑 LEADERSHIP & PROJECT MASTERY:\n\n🎯 My Project Experience:\n• NSRI Drowning Prevention App (Team Lead)\n• AutoFixer Development \n• GitHub Repository Management\n• Client Consultation and Delivery\n\n💼 Leadership Principles:\n• Lead by example, not by title\n• Clear communication = Project success\n• Agile methodology for flexibility\n• Risk management and contingency planning\n\n⚡ Tools I Master:\n• Agile/Scrum frameworks\n• Git version control\n• Project timeline management\n• Stakeholder communication\n• Quality assurance processes\n\nFrom team player to team leader - that's the evolution! 🚀",
			Motivation: "Great leaders aren't born - they're forged through challenges, failures, and the courage to try again! Lead your projects like you lead your life! 💪",
		},
	},
	{
		// Catch-all fallback. Must stay last.
		Topic: "default",
		Answer: Answer{
			Response:   "🤔 Interesting question, hustler! While I may not have specific info on that topic, I can help you with:\n\n💻 Technical Skills: Java, C#, React Native, ASP.NET, databases\n🚀 Career Development: From beginner to tech entrepreneur\n💰 Freelancing & Business: Building your tech empire\n☁️ Cloud Computing: AWS and deployment strategies\n📱 Mobile Development: Native and cross-platform\n🎯 Project Management: Leading tech teams\n💪 Hustler Mindset: Motivation and success strategies\n\nWhat specific area interests you most? Let's dive deep and get you to the next level! 🔥",
			Motivation: "Every expert was once a beginner who never gave up! Your question shows you're thinking - that's the first step to greatness! 💎",
		},
	},
}
