// Package narrative extracts structured career guidance from the free-text
// response of the completion service. This file holds the pre-authored
// fallback roadmaps substituted when a model response contains no usable
// "Step N" blocks.
package narrative

import "github.com/tbourn/go-career-backend/internal/domain"

// defaultRoadmaps maps each canonical career domain to a fixed five-phase
// development plan. The table is read-only after init; DefaultRoadmap hands
// out copies so callers can never mutate it.
var defaultRoadmaps = map[string][]domain.RoadmapStep{
	"Technology": {
		{Step: 1, Title: "Months 1-6: Master Programming Fundamentals", Description: "Complete CS50 or FreeCodeCamp courses. Learn Python and JavaScript deeply. Build 5 projects: calculator, to-do app, weather app, portfolio site, and API project. Practice 2 hours daily on coding challenges (LeetCode, HackerRank). Join GitHub and make first open-source contribution. Study data structures and algorithms. Set up development environment with VS Code, Git, and essential tools."},
		{Step: 2, Title: "Months 7-12: Build Real-World Experience", Description: "Apply to 20+ internships at tech companies. Create 3 substantial projects for your portfolio: full-stack web app, mobile app, or data visualization tool. Contribute to 3+ open-source projects regularly. Build professional portfolio website. Network on LinkedIn and Twitter tech. Attend 2 local tech meetups monthly. Start technical blog and write 5 articles. Learn database management (SQL, MongoDB)."},
		{Step: 3, Title: "Year 2: Specialize and Certify", Description: "Choose specialization: Web Development (React, Node), Data Science (Python, ML), Cloud (AWS, Azure), or Mobile (React Native, Flutter). Complete 2-3 industry certifications. Build 3 advanced projects in your specialization. Secure junior developer position or quality internship. Join specialized communities (r/webdev, data science forums). Attend 1 major tech conference. Master advanced tools in your domain. Start freelancing for experience."},
		{Step: 4, Title: "Years 3-4: Establish Professional Presence", Description: "Target mid-level developer positions at growing companies. Lead 2-3 technical projects at work. Mentor junior developers or interns. Speak at 2 local meetups or conferences. Contribute to technical documentation. Build side project with real users. Expand LinkedIn to 500+ connections. Write 10 technical articles. Consider master's degree or specialized bootcamp. Earn $60-80K+ annually."},
		{Step: 5, Title: "Years 5+: Leadership and Innovation", Description: "Apply for senior developer or tech lead roles. Architect large-scale systems. Mentor team of 3-5 developers. Speak at major conferences (2+ times). Launch successful side product or startup. Build personal brand with 10K+ followers. Earn $100K+ annually. Consider VP Engineering or CTO path. Create online courses or write technical book. Give back through open-source leadership."},
	},
	"Business": {
		{Step: 1, Title: "Months 1-6: Business Fundamentals & Tools", Description: "Complete business courses: Accounting, Marketing, Finance, Operations Management. Master Excel (pivot tables, VLOOKUP, financial modeling). Learn Google Analytics and basic SQL. Study 10 successful business case studies. Join business student organizations. Read 5 business books (Good to Great, Blue Ocean Strategy, etc.). Complete HubSpot Marketing or Google Analytics certification. Develop professional LinkedIn profile. Network with 50+ business professionals. Create business plan for hypothetical venture."},
		{Step: 2, Title: "Months 7-12: Practical Experience & Specialization", Description: "Secure internship at established company or startup. Lead 2 student organization projects. Attend 3 industry networking events. Choose specialization: Marketing, Finance, Operations, or Entrepreneurship. Complete 3 real-world business analyses. Learn PowerBI or Tableau for data visualization. Shadow executives in your target industry. Build professional network of 200+ on LinkedIn. Start personal brand with 5 thought leadership posts. Learn CRM systems (Salesforce basics)."},
		{Step: 3, Title: "Year 2: Professional Development & Certification", Description: "Pursue relevant certifications: PMP (Project Management), Google Analytics, HubSpot, or CFA Level 1. Secure entry-level business role. Lead 2-3 significant projects at work. Master industry-specific software. Build portfolio of business achievements. Attend major industry conference. Join professional associations (AMA, PMI, etc.). Mentor junior colleagues or students. Write 5 industry articles or case studies. Expand network to 500+ professionals. Target $45-60K salary."},
		{Step: 4, Title: "Years 3-4: Management & Strategic Roles", Description: "Target manager or senior analyst positions. Lead team of 3-5 people. Manage budget of $500K+. Complete MBA or executive education program. Drive 2 major strategic initiatives. Speak at 2 industry events. Build reputation in specific domain. Launch side consulting or business. Mentor 3+ professionals. Publish 10 thought leadership pieces. Achieve $70-90K compensation. Develop C-suite relationships."},
		{Step: 5, Title: "Years 5+: Leadership & Entrepreneurship", Description: "Target director-level or VP positions. Manage multi-million dollar P&L. Lead teams of 15+ people. Start own consulting firm or business venture. Serve on advisory boards. Speak at major conferences regularly. Build 5,000+ professional network. Earn $120K+ total compensation. Consider C-suite path (CMO, CFO, COO). Mentor emerging leaders. Write business book or create executive course. Develop passive income streams. Make strategic angel investments."},
	},
	"Art": {
		{Step: 1, Title: "Months 1-6: Foundation & Portfolio Building", Description: "Practice art 3+ hours daily with structured exercises. Study fundamentals: anatomy, perspective, color theory, composition. Complete 30-day drawing challenge. Build initial portfolio with 25+ quality pieces. Learn art history and study 20 master artists. Join local art communities or groups. Take 2 online courses (Skillshare, Domestika, New Masters Academy). Set up Instagram art account. Create basic portfolio website. Study copyright and licensing basics."},
		{Step: 2, Title: "Months 7-12: Technical Skills & First Clients", Description: "Master design software: Adobe Creative Suite (Photoshop, Illustrator, InDesign) or alternatives. Learn Figma for UI/UX or Blender for 3D. Complete 10 commissioned pieces for friends/family. Build portfolio to 40+ diverse pieces. Share work daily on Instagram and ArtStation. Enter 5 art competitions or juried shows. Network with 100+ artists online. Do first paid freelance projects. Learn basic business skills (invoicing, contracts). Study successful artists' career paths."},
		{Step: 3, Title: "Year 2: Brand Development & Specialization", Description: "Choose specialization: Illustration, Graphic Design, UI/UX, Fine Art, 3D, or Animation. Create professional portfolio website with 50+ best works. Grow Instagram to 5,000+ followers with consistent posting. Freelance regularly with 15+ paid projects. Apply to design studios, agencies, or galleries. Exhibit work in 2 local shows or online galleries. Collaborate with 3+ other creatives. Create print-on-demand products (Redbubble, Society6). Join professional organizations (AIGA, local art councils). Master advanced techniques in specialization."},
		{Step: 4, Title: "Years 3-4: Professional Growth & Revenue", Description: "Secure full-time position at studio/agency or establish strong freelance business. Complete 50+ professional projects. Build client base of 20+ recurring customers. Earn $50-70K annually from art. Show work in 5+ exhibitions. Grow following to 20K+ across platforms. Launch online shop or Patreon with $500+ monthly. Teach 2 workshops or online courses. Speak at 2 creative events. Build professional network of 500+. Enter major competitions. Develop signature style."},
		{Step: 5, Title: "Years 5+: Mastery & Business Leadership", Description: "Become senior designer, art director, or successful independent artist. Earn $80K+ from multiple art income streams. Lead creative teams or run own studio. Exhibit in major galleries or museums. Grow audience to 100K+ across platforms. Teach regular workshops and online courses. Publish art book or create major NFT collection. Commission work for major brands. Mentor emerging artists. Build passive income through prints, products, licensing. Speak at major conferences. Consider opening own gallery or school."},
	},
	"Music": {
		{Step: 1, Title: "Months 1-6: Foundation & Technical Skills", Description: "Practice instrument/voice 3+ hours daily with structured routine. Complete music theory course (Berklee Online or local conservatory). Learn 20+ songs in your genre. Record 10 quality demos in home setup. Study 5 music production tutorials weekly. Master basic DAW (GarageBand or free version of Pro Tools). Join local music community or ensemble. Study successful artists in your genre. Set up social media presence. Create simple EPK (Electronic Press Kit)."},
		{Step: 2, Title: "Months 7-12: Performance & Audience Building", Description: "Perform 2-3 times monthly at open mics, cafes, and small venues. Collaborate with 3+ local musicians on projects. Launch YouTube channel with 12 quality videos (covers and originals). Record first professional EP (4-5 songs) in studio. Build Instagram following to 1,000+ with consistent content. Create TikTok presence with music snippets. Network with 50+ music industry people. Book first paid gigs. Join musician communities online. Study live performance techniques."},
		{Step: 3, Title: "Year 2: Professional Development & Production", Description: "Invest in home studio: quality interface, microphone, monitors, DAW (Logic Pro, Ableton, FL Studio). Master music production with 100+ hours of practice. Release first full album independently. Perform 20+ paid shows. Grow social following to 5,000+. Collaborate with established artists. Study mixing and mastering. Submit to music blogs and playlists. Book shows in 3+ cities. Earn first $10K from music. Consider music business courses. Build professional website."},
		{Step: 4, Title: "Years 3-4: Career Establishment & Revenue", Description: "Release music on all platforms (Spotify, Apple Music, YouTube Music). Target 50K+ streams per release. Perform 40+ shows annually including festivals. Build email list of 1,000+ fans. Develop merchandise line. Secure music sync deals for TV/film. Teach 10+ private students weekly or online courses. Collaborate with brands for sponsorships. Apply to music grants and artist programs. Gross $40-60K annually from multiple music revenue streams. Work with booking agent or manager."},
		{Step: 5, Title: "Years 5+: Mastery & Diversification", Description: "Headline shows and tour regionally/nationally. Release 2+ projects annually maintaining quality. Build loyal fanbase of 100K+ across platforms. Earn $80K+ from music: performances, streaming, teaching, sync licensing, merchandise. Start your own label or production company. Mentor emerging artists. Score films, games, or commercials regularly. Host workshops and masterclasses. Develop passive income through sample packs, presets, online courses. Consider opening recording studio or music school."},
	},
	"Education": {
		{Step: 1, Title: "Months 1-6: Teaching Foundations & Experience", Description: "Volunteer as tutor for 10+ students. Complete education fundamentals course. Study pedagogy and learning theories (Bloom's Taxonomy, multiple intelligences). Observe 20+ hours of master teachers. Develop 10 lesson plans in your subject. Join teaching communities (r/teachers, local education groups). Read 5 education books (Teach Like a Champion, etc.). Learn classroom management strategies. Practice public speaking. Understand child development psychology."},
		{Step: 2, Title: "Months 7-12: Practical Teaching & Skills", Description: "Work as teaching assistant or substitute teacher. Complete 100+ hours of classroom instruction. Teach after-school program or summer camp. Develop curriculum for specific subject/grade. Master 5 ed-tech tools (Google Classroom, Kahoot, Nearpod). Create engaging teaching materials and resources. Study differentiated instruction techniques. Attend 3 education conferences or workshops. Network with 50+ educators. Begin teacher certification program or education degree."},
		{Step: 3, Title: "Year 2: Certification & Specialization", Description: "Complete B.Ed or teaching certification program. Pass required licensing exams. Secure first teaching position. Teach 150+ students successfully. Develop expertise in subject area or grade level. Get specialized certifications (ESL, Special Ed, Gifted). Master assessment and grading strategies. Implement project-based learning. Join professional teaching associations. Lead extracurricular activity or club. Integrate technology effectively. Build reputation in school community."},
		{Step: 4, Title: "Years 3-4: Professional Development & Leadership", Description: "Become experienced teacher with strong student outcomes. Lead department meetings or grade-level teams. Mentor 2-3 new teachers. Pursue M.Ed or specialized graduate degree. Present at education conferences. Develop innovative curriculum or teaching methods. Write education blog or create teaching resources. Learn data-driven instruction. Serve on school committees. Build professional network of 200+ educators. Earn $50-65K depending on location. Consider National Board Certification."},
		{Step: 5, Title: "Years 5+: Leadership & Educational Impact", Description: "Move into instructional coach, department head, assistant principal, or principal role. Launch tutoring center or education startup. Create online courses serving 1,000+ students. Become education consultant or curriculum developer. Earn $70-100K+ in leadership roles. Lead professional development for teachers. Write education book or create teacher training program. Speak at major education conferences. Influence education policy. Mentor emerging educational leaders. Build legacy of educational innovation and student success."},
	},
}

// DefaultRoadmap returns a copy of the pre-authored five-phase roadmap for
// the given canonical domain. Unrecognized domains fall back to the
// Technology plan.
func DefaultRoadmap(careerDomain string) []domain.RoadmapStep {
	steps, ok := defaultRoadmaps[careerDomain]
	if !ok {
		steps = defaultRoadmaps["Technology"]
	}
	out := make([]domain.RoadmapStep, len(steps))
	copy(out, steps)
	return out
}
