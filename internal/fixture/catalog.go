package fixture

import "github.com/shifaalhind/backend/internal/content"

func hospitals() []Hospital {
	return []Hospital{
		{
			Slug:   "apollo-bangalore",
			NameEn: "Apollo Hospitals Bangalore",
			NameAr: "مستشفى أبولو بنغالور",
			DescriptionEn: `Apollo Hospitals Bangalore is a leading multispecialty hospital offering world-class cardiac care, orthopedics, oncology, and neurology services for international patients. With over 40 years of excellence, Apollo has treated more than 200 million patients worldwide.

The hospital features state-of-the-art facilities including advanced cardiac catheterization labs, robotic surgery systems, PET-CT scanners, and comprehensive cancer care centers. Our international patient services include dedicated case managers, airport pickup, accommodation assistance, and 24/7 Arabic language support.`,
			DescriptionAr: `مستشفى أبولو بنغالور هو مستشفى رائد متعدد التخصصات يقدم رعاية قلبية من الطراز العالمي وجراحة العظام والأورام وخدمات الأعصاب للمرضى الدوليين. مع أكثر من 40 عامًا من التميز، عالج أبولو أكثر من 200 مليون مريض في جميع أنحاء العالم.

يتميز المستشفى بمرافق حديثة بما في ذلك مختبرات قسطرة القلب المتقدمة وأنظمة الجراحة الروبوتية وماسحات PET-CT ومراكز شاملة لرعاية السرطان. تشمل خدمات المرضى الدوليين لدينا مديري حالات مخصصين والاستقبال من المطار والمساعدة في الإقامة ودعم اللغة العربية على مدار الساعة طوال أيام الأسبوع.`,
			Address:            "Bannerghatta Road, Bangalore",
			CityEn:             "Bangalore",
			CityAr:             "بنغالور",
			Phone:              "+91 80 2630 4050",
			Email:              "international@apollobangalore.example.com",
			Accreditations:     []string{"JCI", "NABH", "ISO 9001:2015"},
			LanguagesSupported: []string{"English", "Arabic", "Hindi", "Kannada", "Tamil"},
			Images: content.Images{
				Main: "/images/hospitals/apollo-main.jpg",
				Gallery: []string{
					"/images/hospitals/apollo-lobby.jpg",
					"/images/hospitals/apollo-cardiac-lab.jpg",
					"/images/hospitals/apollo-room.jpg",
				},
			},
			EstablishedYear: ptrInt(1983),
			BedCount:        ptrInt(700),
			Featured:        true,
			Meta: Meta{
				TitleEn:       "Apollo Hospitals Bangalore - Top Hospital for GCC Patients | Shifa AlHind",
				DescriptionEn: "Apollo Hospitals Bangalore offers world-class medical care for GCC patients. JCI-accredited with Arabic support, visa assistance, and comprehensive care packages.",
				TitleAr:       "مستشفى أبولو بنغالور - أفضل مستشفى لمرضى دول الخليج | شفاء الهند",
				DescriptionAr: "يوفر مستشفى أبولو بنغالور رعاية طبية عالمية المستوى لمرضى دول الخليج. معتمد من JCI مع دعم اللغة العربية والمساعدة في التأشيرة وباقات رعاية شاملة.",
			},
			Published: true,
		},
	}
}

func doctors() []Doctor {
	return []Doctor{
		{
			HospitalSlug: "apollo-bangalore",
			Slug:         "dr-ahmed-khan-cardiologist",
			NameEn:       "Dr. Ahmed Khan",
			NameAr:       "د. أحمد خان",
			TitleEn:      "Senior Consultant, Interventional Cardiology",
			TitleAr:      "استشاري أول، أمراض القلب التداخلية",
			SpecialtiesEn: []string{
				"Interventional Cardiology", "Heart Failure", "Coronary Angioplasty", "TAVR",
			},
			SpecialtiesAr: []string{
				"أمراض القلب التداخلية", "قصور القلب", "رأب الأوعية التاجية", "استبدال الصمام الأبهري عبر القسطرة",
			},
			Qualifications: []string{
				"MBBS",
				"MD (Internal Medicine)",
				"DM (Cardiology)",
				"Fellowship - Cleveland Clinic",
			},
			ExperienceYears: 20,
			Languages:       []string{"English", "Arabic", "Hindi", "Urdu"},
			BioEn: `Dr. Ahmed Khan is a renowned interventional cardiologist with over 20 years of experience in complex cardiac procedures. He specializes in coronary angioplasty, TAVR (Transcatheter Aortic Valve Replacement), and heart failure management.

Qualifications:
- MBBS, MD (Internal Medicine), DM (Cardiology)
- Fellowship in Interventional Cardiology, Cleveland Clinic, USA
- European Board Certification in Cardiology

Dr. Khan has performed over 10,000 successful cardiac interventions and is fluent in English, Arabic, Hindi, and Urdu, making him an ideal choice for GCC patients.`,
			BioAr: `الدكتور أحمد خان هو طبيب قلب تداخلي مشهور يتمتع بخبرة تزيد عن 20 عامًا في الإجراءات القلبية المعقدة. وهو متخصص في رأب الأوعية التاجية واستبدال الصمام الأبهري عبر القسطرة وإدارة قصور القلب.

المؤهلات:
- بكالوريوس الطب والجراحة، ماجستير (الطب الباطني)، دكتوراه في الطب (أمراض القلب)
- زمالة في أمراض القلب التداخلية، عيادة كليفلاند، الولايات المتحدة الأمريكية
- شهادة المجلس الأوروبي في أمراض القلب

أجرى الدكتور خان أكثر من 10,000 تدخل قلبي ناجح ويتحدث بطلاقة الإنجليزية والعربية والهندية والأوردية، مما يجعله الخيار الأمثل لمرضى دول الخليج.`,
			Image:                 "/images/doctors/dr-ahmed-khan.jpg",
			ConsultationFee:       ptrFloat(150),
			TelemedicineAvailable: true,
			Meta: Meta{
				TitleEn:       "Dr. Ahmed Khan - Top Cardiologist in Bangalore | Arabic Speaking",
				DescriptionEn: "Consult Dr. Ahmed Khan, leading interventional cardiologist at Apollo Bangalore. Arabic-speaking doctor with 20+ years experience. Book teleconsultation.",
				TitleAr:       "د. أحمد خان - أفضل طبيب قلب في بنغالور | يتحدث العربية",
				DescriptionAr: "استشر الدكتور أحمد خان، طبيب القلب التداخلي الرائد في أبولو بنغالور. طبيب يتحدث العربية مع خبرة تزيد عن 20 عامًا. احجز استشارة عن بعد.",
			},
			Published: true,
		},
	}
}

func treatments() []Treatment {
	return []Treatment{
		{
			Slug:       "hip-replacement-surgery-bangalore",
			NameEn:     "Hip Replacement Surgery",
			NameAr:     "جراحة استبدال مفصل الورك",
			CategoryEn: "Orthopedics",
			CategoryAr: "جراحة العظام",
			SummaryEn:  "Minimally invasive hip replacement surgery in Bangalore with rapid recovery, physiotherapy packages, and comprehensive care for GCC patients at 60% lower cost than UAE.",
			SummaryAr:  "جراحة استبدال مفصل الورك بتقنيات طفيفة التوغل في بنغالور مع تعافي سريع وبرامج علاج طبيعي ورعاية شاملة لمرضى دول الخليج بتكلفة أقل بنسبة 60٪ من الإمارات.",
			BodyEn: content.Document{Sections: []content.Block{
				{Type: content.BlockHeading, Content: "Why Choose Bangalore for Hip Replacement?"},
				{Type: content.BlockParagraph, Content: "Bangalore has emerged as the top destination for orthopedic surgery in Asia, with world-class hospitals using the latest minimally invasive techniques for hip replacement. Our partner hospitals have performed over 15,000 successful hip replacements for international patients."},
				{Type: content.BlockHeading, Content: "Procedure Overview"},
				{Type: content.BlockList, Items: []string{
					"Pre-operative assessment and planning (1-2 days)",
					"Minimally invasive surgery (2-3 hours)",
					"Hospital stay (4-5 days)",
					"Physiotherapy program (3-4 weeks)",
					"Follow-up consultations (ongoing)",
				}},
				{Type: content.BlockHeading, Content: "Cost Comparison"},
				{Type: content.BlockTable,
					Headers: []string{"Location", "Cost (USD)", "Savings"},
					Rows: [][]string{
						{"UAE", "$15,000 - $25,000", "-"},
						{"Saudi Arabia", "$12,000 - $20,000", "-"},
						{"Bangalore", "$4,500 - $8,500", "60-70%"},
					}},
			}},
			BodyAr: content.Document{Sections: []content.Block{
				{Type: content.BlockHeading, Content: "لماذا تختار بنغالور لاستبدال مفصل الورك؟"},
				{Type: content.BlockParagraph, Content: "برزت بنغالور كوجهة رئيسية لجراحة العظام في آسيا، مع مستشفيات عالمية المستوى تستخدم أحدث التقنيات طفيفة التوغل لاستبدال مفصل الورك. أجرت مستشفياتنا الشريكة أكثر من 15,000 عملية استبدال ورك ناجحة للمرضى الدوليين."},
				{Type: content.BlockHeading, Content: "نظرة عامة على الإجراء"},
				{Type: content.BlockList, Items: []string{
					"التقييم والتخطيط قبل الجراحة (1-2 يوم)",
					"الجراحة طفيفة التوغل (2-3 ساعات)",
					"الإقامة في المستشفى (4-5 أيام)",
					"برنامج العلاج الطبيعي (3-4 أسابيع)",
					"استشارات المتابعة (مستمرة)",
				}},
				{Type: content.BlockHeading, Content: "مقارنة التكلفة"},
				{Type: content.BlockTable,
					Headers: []string{"الموقع", "التكلفة (دولار أمريكي)", "التوفير"},
					Rows: [][]string{
						{"الإمارات", "$15,000 - $25,000", "-"},
						{"السعودية", "$12,000 - $20,000", "-"},
						{"بنغالور", "$4,500 - $8,500", "60-70%"},
					}},
			}},
			CostMin:     4500,
			CostMax:     8500,
			Currency:    "USD",
			StayDaysMin: ptrInt(4),
			StayDaysMax: ptrInt(5),
			FAQ: []content.FAQItem{
				{
					QuestionEn: "How long is the recovery period?",
					AnswerEn:   "Most patients can walk with support within 24 hours and return to normal activities in 6-8 weeks with proper physiotherapy.",
					QuestionAr: "كم مدة التعافي؟",
					AnswerAr:   "يمكن لمعظم المرضى المشي بدعم في غضون 24 ساعة والعودة إلى الأنشطة الطبيعية في 6-8 أسابيع مع العلاج الطبيعي المناسب.",
				},
				{
					QuestionEn: "Is an Arabic-speaking doctor available?",
					AnswerEn:   "Yes, we have Arabic-speaking orthopedic surgeons and translators available 24/7 throughout your treatment.",
					QuestionAr: "هل يتوفر طبيب يتحدث العربية؟",
					AnswerAr:   "نعم، لدينا جراحو عظام يتحدثون العربية ومترجمون متاحون على مدار الساعة طوال فترة علاجك.",
				},
				{
					QuestionEn: "What is included in the package?",
					AnswerEn:   "The package includes surgery, hospital stay, medications, physiotherapy, airport pickup, accommodation assistance, and post-discharge follow-up for 3 months.",
					QuestionAr: "ما الذي يشمله الباقة؟",
					AnswerAr:   "تشمل الباقة الجراحة والإقامة في المستشفى والأدوية والعلاج الطبيعي والاستقبال من المطار والمساعدة في الإقامة ومتابعة ما بعد الخروج لمدة 3 أشهر.",
				},
			},
			Images: content.Images{
				Main: "/images/treatments/hip-replacement-main.jpg",
			},
			HospitalSlugs: []string{"apollo-bangalore"},
			Featured:      true,
			Meta: Meta{
				TitleEn:       "Hip Replacement Surgery in Bangalore - Save 60% | Shifa AlHind",
				DescriptionEn: "Get world-class hip replacement surgery in Bangalore at $4,500-$8,500. JCI-accredited hospitals, Arabic support, visa help. Free consultation for GCC patients.",
				TitleAr:       "جراحة استبدال مفصل الورك في بنغالور - وفر 60٪ | شفاء الهند",
				DescriptionAr: "احصل على جراحة استبدال مفصل ورك عالمية المستوى في بنغالور مقابل 4,500-8,500 دولار. مستشفيات معتمدة من JCI، دعم عربي، مساعدة في التأشيرة. استشارة مجانية لمرضى الخليج.",
			},
			Published: true,
		},
	}
}

func packages() []Package {
	return []Package{
		{
			TreatmentSlug: "hip-replacement-surgery-bangalore",
			HospitalSlug:  "apollo-bangalore",
			Slug:          "comprehensive-care-package",
			NameEn:        "Comprehensive Care Package",
			NameAr:        "باقة الرعاية الشاملة",
			DescriptionEn: "All-inclusive medical tourism package covering surgery, accommodation, translation, visa support, and aftercare for GCC patients.",
			DescriptionAr: "باقة سياحة طبية شاملة تغطي الجراحة والإقامة والترجمة ودعم التأشيرة والرعاية اللاحقة لمرضى دول الخليج.",
			Price:         7500,
			Currency:      "USD",
			DurationDays:  ptrInt(12),
			InclusionsEn: []string{
				"Pre-operative consultations and tests",
				"Surgery with experienced surgeon",
				"Private hospital room (5 days)",
				"All medications and medical supplies",
				"3 weeks physiotherapy program",
				"Airport pickup and drop-off",
				"Hotel accommodation for companion (7 days)",
				"24/7 Arabic translator",
				"Visa invitation letter",
				"Post-discharge follow-up (3 months)",
				"Medical reports in English & Arabic",
			},
			InclusionsAr: []string{
				"الاستشارات والفحوصات قبل الجراحة",
				"الجراحة مع جراح ذي خبرة",
				"غرفة خاصة في المستشفى (5 أيام)",
				"جميع الأدوية والمستلزمات الطبية",
				"برنامج علاج طبيعي لمدة 3 أسابيع",
				"الاستقبال والتوصيل من وإلى المطار",
				"إقامة فندقية للمرافق (7 أيام)",
				"مترجم عربي على مدار الساعة",
				"خطاب دعوة للتأشيرة",
				"متابعة ما بعد الخروج (3 أشهر)",
				"تقارير طبية بالإنجليزية والعربية",
			},
			ExclusionsEn: []string{
				"International flights",
				"Personal expenses and shopping",
				"Treatment of unrelated conditions",
			},
			ExclusionsAr: []string{
				"تذاكر الطيران الدولية",
				"المصاريف الشخصية والتسوق",
				"علاج الحالات غير ذات الصلة",
			},
			Featured:  true,
			Published: true,
		},
	}
}
