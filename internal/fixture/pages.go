package fixture

import "github.com/shifaalhind/backend/internal/content"

func contentPages() []ContentPage {
	return []ContentPage{
		{
			Slug:      "medical-tourism-gcc-to-bangalore",
			Kind:      "BLOG",
			TitleEn:   "Medical Tourism from GCC to Bangalore: A Complete Guide",
			TitleAr:   "السياحة العلاجية من دول الخليج إلى بنغالور: دليل شامل",
			ExcerptEn: "Discover why thousands of GCC patients choose Bangalore for medical treatment. Learn about cost savings, quality care, and the complete medical tourism journey.",
			ExcerptAr: "اكتشف لماذا يختار الآلاف من مرضى دول الخليج بنغالور للعلاج الطبي. تعرف على التوفير في التكاليف والرعاية الجيدة والرحلة الكاملة للسياحة العلاجية.",
			BodyEn: content.Document{Sections: []content.Block{
				{Type: content.BlockHeading, Content: "Why Bangalore?"},
				{Type: content.BlockParagraph, Content: "Every year, tens of thousands of patients from Saudi Arabia, the UAE, Kuwait, Qatar, Oman, and Bahrain travel to Bangalore for treatment. The city combines JCI-accredited hospitals and internationally trained specialists with costs 60-70% below what the same procedures command in the Gulf."},
				{Type: content.BlockHeading, Content: "Planning Your Journey"},
				{Type: content.BlockList, Items: []string{
					"Share your medical reports for a free remote opinion",
					"Receive a treatment plan with a fixed cost estimate",
					"Apply for an Indian medical visa with our invitation letter",
					"Fly to Bangalore; airport pickup and hotel are arranged",
					"Complete treatment with an Arabic translator at your side",
					"Return home with reports in English and Arabic, plus remote follow-up",
				}},
				{Type: content.BlockHeading, Content: "During Your Stay"},
				{Type: content.BlockParagraph, Content: "A dedicated case manager coordinates every appointment, and Arabic-speaking staff are available around the clock. Halal food, prayer rooms, and accommodation near the hospital are standard for Gulf patients."},
				{Type: content.BlockCallout, Content: "A medical visa for India is typically issued within 3-5 working days once the hospital invitation letter is in hand."},
			}},
			BodyAr: content.Document{Sections: []content.Block{
				{Type: content.BlockHeading, Content: "لماذا بنغالور؟"},
				{Type: content.BlockParagraph, Content: "يسافر كل عام عشرات الآلاف من المرضى من السعودية والإمارات والكويت وقطر وعمان والبحرين إلى بنغالور للعلاج. تجمع المدينة بين مستشفيات معتمدة من JCI وأطباء متخصصين مدربين دوليًا بتكاليف أقل بنسبة 60-70٪ مما تكلفه الإجراءات نفسها في الخليج."},
				{Type: content.BlockHeading, Content: "التخطيط لرحلتك"},
				{Type: content.BlockList, Items: []string{
					"شارك تقاريرك الطبية للحصول على رأي طبي مجاني عن بعد",
					"استلم خطة علاج مع تقدير ثابت للتكلفة",
					"تقدم بطلب تأشيرة طبية هندية مع خطاب الدعوة الخاص بنا",
					"سافر إلى بنغالور؛ الاستقبال من المطار والفندق مرتبان",
					"أكمل العلاج مع مترجم عربي إلى جانبك",
					"عد إلى وطنك مع تقارير بالإنجليزية والعربية ومتابعة عن بعد",
				}},
				{Type: content.BlockHeading, Content: "أثناء إقامتك"},
				{Type: content.BlockParagraph, Content: "ينسق مدير حالة مخصص كل موعد، ويتوفر موظفون يتحدثون العربية على مدار الساعة. الطعام الحلال وغرف الصلاة والإقامة بالقرب من المستشفى أمور أساسية لمرضى الخليج."},
				{Type: content.BlockCallout, Content: "تصدر التأشيرة الطبية للهند عادة خلال 3-5 أيام عمل بعد استلام خطاب الدعوة من المستشفى."},
			}},
			CoverImage:  "/images/blog/gcc-to-bangalore-guide.jpg",
			Tags:        []string{"medical tourism", "GCC", "Bangalore", "guide"},
			AuthorName:  "Dr. Sarah Ahmed",
			AuthorEmail: "editor@shifaalhind.com",
			Meta: Meta{
				TitleEn:       "Medical Tourism Guide: GCC to Bangalore 2025 | Shifa AlHind",
				DescriptionEn: "Complete guide to medical tourism from GCC countries to Bangalore. Save 60-70% on medical procedures with world-class care. Visa, travel, and accommodation tips.",
				TitleAr:       "دليل السياحة العلاجية: من الخليج إلى بنغالور 2025 | شفاء الهند",
				DescriptionAr: "دليل كامل للسياحة العلاجية من دول الخليج إلى بنغالور. وفر 60-70٪ على الإجراءات الطبية مع رعاية عالمية المستوى. نصائح للتأشيرة والسفر والإقامة.",
			},
			Published: true,
		},
		{
			Slug:      "top-hospitals-bangalore-gcc-patients",
			Kind:      "BLOG",
			TitleEn:   "Top 5 Hospitals in Bangalore for GCC Patients",
			TitleAr:   "أفضل 5 مستشفيات في بنغالور لمرضى دول الخليج",
			ExcerptEn: "Explore the best JCI-accredited hospitals in Bangalore offering Arabic support, international patient services, and world-class medical care.",
			ExcerptAr: "استكشف أفضل المستشفيات المعتمدة من JCI في بنغالور التي تقدم الدعم العربي وخدمات المرضى الدوليين والرعاية الطبية العالمية.",
			BodyEn: content.Document{Sections: []content.Block{
				{Type: content.BlockParagraph, Content: "Choosing the right hospital is the single most important decision in a medical journey. These are the Bangalore hospitals Gulf patients rate highest for clinical outcomes and for how well they handle Arabic-speaking visitors."},
				{Type: content.BlockHeading, Content: "What We Looked For"},
				{Type: content.BlockList, Items: []string{
					"JCI or NABH accreditation",
					"A dedicated international patient department",
					"Arabic interpreters on staff",
					"Published outcome data for high-volume procedures",
					"Transparent fixed-price packages",
				}},
				{Type: content.BlockHeading, Content: "The Shortlist"},
				{Type: content.BlockParagraph, Content: "Apollo Hospitals Bangalore leads the list for cardiac care and orthopedics, with over 40 years of history and round-the-clock Arabic support. The remaining entries each excel in a specialty, from oncology to neurosurgery, and all hold JCI accreditation."},
			}},
			BodyAr: content.Document{Sections: []content.Block{
				{Type: content.BlockParagraph, Content: "اختيار المستشفى المناسب هو أهم قرار في الرحلة العلاجية. هذه هي مستشفيات بنغالور التي يمنحها مرضى الخليج أعلى تقييم للنتائج السريرية ولمدى حسن تعاملها مع الزوار الناطقين بالعربية."},
				{Type: content.BlockHeading, Content: "ما الذي بحثنا عنه"},
				{Type: content.BlockList, Items: []string{
					"اعتماد JCI أو NABH",
					"قسم مخصص للمرضى الدوليين",
					"مترجمون عرب ضمن الطاقم",
					"بيانات نتائج منشورة للإجراءات عالية الحجم",
					"باقات شفافة بأسعار ثابتة",
				}},
				{Type: content.BlockHeading, Content: "القائمة المختصرة"},
				{Type: content.BlockParagraph, Content: "يتصدر مستشفى أبولو بنغالور القائمة في رعاية القلب وجراحة العظام، بتاريخ يمتد لأكثر من 40 عامًا ودعم عربي على مدار الساعة. وتتميز بقية المستشفيات كل في تخصصه، من الأورام إلى جراحة الأعصاب، وجميعها حاصلة على اعتماد JCI."},
			}},
			CoverImage:  "/images/blog/top-hospitals-bangalore.jpg",
			Tags:        []string{"hospitals", "Bangalore", "GCC"},
			AuthorName:  "Shifa AlHind Team",
			AuthorEmail: "editor@shifaalhind.com",
			Meta: Meta{
				TitleEn:       "Top 5 Hospitals in Bangalore for GCC Patients 2025",
				DescriptionEn: "Discover the best hospitals in Bangalore for GCC patients. JCI-accredited, Arabic-speaking staff, and specialized international patient departments.",
			},
			Published: true,
		},
		{
			Slug:      "cost-comparison-medical-treatment-gcc-vs-india",
			Kind:      "BLOG",
			TitleEn:   "Cost Comparison: Medical Treatment in GCC vs India",
			TitleAr:   "مقارنة التكلفة: العلاج الطبي في دول الخليج مقابل الهند",
			ExcerptEn: "Detailed cost analysis of popular medical procedures in GCC countries compared to India. Understand the savings without compromising quality.",
			ExcerptAr: "تحليل مفصل لتكلفة الإجراءات الطبية الشائعة في دول الخليج مقارنة بالهند. افهم التوفير دون المساس بالجودة.",
			BodyEn: content.Document{Sections: []content.Block{
				{Type: content.BlockParagraph, Content: "Price is the first question most patients ask, so here are the numbers side by side. All figures are indicative package prices in US dollars and include the hospital stay."},
				{Type: content.BlockTable,
					Headers: []string{"Procedure", "GCC (USD)", "Bangalore (USD)", "Savings"},
					Rows: [][]string{
						{"Cardiac bypass (CABG)", "$25,000 - $40,000", "$6,500 - $10,000", "~70%"},
						{"Hip replacement", "$15,000 - $25,000", "$4,500 - $8,500", "~65%"},
						{"Knee replacement", "$14,000 - $22,000", "$4,000 - $7,500", "~65%"},
						{"Angioplasty", "$12,000 - $18,000", "$3,500 - $6,000", "~68%"},
					}},
				{Type: content.BlockHeading, Content: "Why the Difference?"},
				{Type: content.BlockParagraph, Content: "Lower staffing and facility costs, high procedure volumes, and a favourable exchange rate drive the gap. Implants and consumables are the same international brands used in Gulf hospitals, and the surgeons frequently trained in the same US and European programs."},
				{Type: content.BlockCallout, Content: "Always compare complete package prices, not surgeon fees alone. A quoted figure should cover the stay, medications, and follow-up."},
			}},
			BodyAr: content.Document{Sections: []content.Block{
				{Type: content.BlockParagraph, Content: "السعر هو أول سؤال يطرحه معظم المرضى، لذا إليك الأرقام جنبًا إلى جنب. جميع الأرقام أسعار باقات استرشادية بالدولار الأمريكي وتشمل الإقامة في المستشفى."},
				{Type: content.BlockTable,
					Headers: []string{"الإجراء", "دول الخليج (دولار)", "بنغالور (دولار)", "التوفير"},
					Rows: [][]string{
						{"جراحة القلب المفتوح", "$25,000 - $40,000", "$6,500 - $10,000", "~70%"},
						{"استبدال مفصل الورك", "$15,000 - $25,000", "$4,500 - $8,500", "~65%"},
						{"استبدال مفصل الركبة", "$14,000 - $22,000", "$4,000 - $7,500", "~65%"},
						{"قسطرة القلب", "$12,000 - $18,000", "$3,500 - $6,000", "~68%"},
					}},
				{Type: content.BlockHeading, Content: "لماذا هذا الفرق؟"},
				{Type: content.BlockParagraph, Content: "انخفاض تكاليف التشغيل والمرافق وارتفاع حجم العمليات وسعر الصرف الملائم هي أسباب الفارق. المستلزمات والغرسات من العلامات العالمية نفسها المستخدمة في مستشفيات الخليج، وكثير من الجراحين تدربوا في البرامج الأمريكية والأوروبية ذاتها."},
				{Type: content.BlockCallout, Content: "قارن دائمًا أسعار الباقات الكاملة وليس أتعاب الجراح وحدها. يجب أن يشمل السعر المعلن الإقامة والأدوية والمتابعة."},
			}},
			CoverImage:  "/images/blog/cost-comparison.jpg",
			Tags:        []string{"costs", "comparison", "GCC", "India"},
			AuthorName:  "Finance Team",
			AuthorEmail: "editor@shifaalhind.com",
			Meta: Meta{
				TitleEn:       "Medical Treatment Cost: GCC vs India - Save Up to 70%",
				DescriptionEn: "Compare medical treatment costs between GCC and India. Cardiac surgery, orthopedics, oncology prices. Save 60-70% with same quality care.",
			},
			Published: true,
		},
	}
}
