package impl

import "bdgaraj/internal/domain/entity"

func defaultServices() []*entity.Service {
	return []*entity.Service{
		{Name: "AlienTech Yazılım", Description: "Motor performans optimizasyonu ve ECU yazılımı", Icon: "💻"},
		{Name: "Bakım & Onarım", Description: "Periyodik bakım ve genel onarım hizmetleri", Icon: "🔧"},
		{Name: "Çanta Montajı", Description: "TSE onaylı çanta sistemleri projelendirme ve montaj", Icon: "🧳"},
		{Name: "Sigorta & Hasar Takibi", Description: "Kaza ve hasar durumlarında sigorta işlemleri takibi", Icon: "📋"},
	}
}

func defaultFeatures() []*entity.Feature {
	return []*entity.Feature{
		{Icon: "🏆", Title: "Uzman Kadro", Description: "Yılların deneyimine sahip sertifikalı teknisyenler", Order: 1},
		{Icon: "⚡", Title: "Hızlı Servis", Description: "Randevulu çalışma ile bekleme olmadan teslim", Order: 2},
		{Icon: "🛡️", Title: "Garantili İşçilik", Description: "Tüm işlemlerimiz garanti kapsamındadır", Order: 3},
		{Icon: "💰", Title: "Uygun Fiyat", Description: "Şeffaf ve rekabetçi fiyatlandırma", Order: 4},
	}
}

func defaultTestimonials() []*entity.Testimonial {
	return []*entity.Testimonial{
		{Name: "Ahmet Y.", Text: "ECU yazılımından sonra araç bambaşka oldu, çok memnunum.", Rating: 5, Vehicle: "Ford Transit", Order: 1},
		{Name: "Mehmet K.", Text: "Bakım zamanında ve söylenen fiyata yapıldı.", Rating: 5, Vehicle: "Fiat Doblo", Order: 2},
		{Name: "Ayşe D.", Text: "Sigorta sürecini baştan sona takip ettiler, hiç uğraşmadım.", Rating: 5, Vehicle: "Renault Kangoo", Order: 3},
	}
}

func defaultFAQs() []*entity.FAQ {
	return []*entity.FAQ{
		{Question: "Randevu almadan gelebilir miyim?", Answer: "Gelebilirsiniz, ancak randevulu müşterilerimize öncelik veriyoruz.", Order: 1},
		{Question: "ECU yazılımı aracıma zarar verir mi?", Answer: "Hayır. Orijinal yazılım yedeklenir ve istenirse geri yüklenir.", Order: 2},
		{Question: "Çanta montajı ne kadar sürer?", Answer: "Projeye göre değişmekle birlikte genellikle 1-2 iş günü sürer.", Order: 3},
		{Question: "Sigorta işlemlerini siz mi takip ediyorsunuz?", Answer: "Evet, hasar dosyasının açılışından kapanışına kadar süreci takip ediyoruz.", Order: 4},
	}
}

func defaultContactInfo() *entity.ContactInfo {
	return &entity.ContactInfo{
		Address:        "Sanayi Sitesi, İstanbul",
		Phone:          "+90 532 683 26 03",
		EmergencyPhone: "+90 532 683 26 03",
		Email:          "info@bdgaraj.com",
		WhatsApp:       "+905326832603",
		WorkingHours:   "Pazartesi - Cumartesi: 08:30 - 19:00",
	}
}

func defaultCTASection() *entity.CTASection {
	return &entity.CTASection{
		Title:      "Aracınız için randevu alın",
		Subtitle:   "Uzman ekibimiz aracınızı en kısa sürede teslim etsin",
		ButtonText: "Hemen Randevu Al",
		ButtonLink: "/randevu",
	}
}

// contentMigration renames a stored value that earlier releases seeded.
type contentMigration struct {
	name       string
	collection string
	field      string
	oldValue   string
	newValue   string
}

// contentMigrations run in order after baseline seeding.
func contentMigrations() []contentMigration {
	return []contentMigration{
		{
			name:       "rename-insurance-service",
			collection: "services",
			field:      "name",
			oldValue:   "Sigorta Takibi",
			newValue:   "Sigorta & Hasar Takibi",
		},
		{
			name:       "cta-button-text",
			collection: "cta_section",
			field:      "button_text",
			oldValue:   "Randevu Al",
			newValue:   "Hemen Randevu Al",
		},
	}
}
